package entity

import "time"

// SafeZoneEventType is the kind of membership transition.
type SafeZoneEventType string

const (
	SafeZoneEventEntry SafeZoneEventType = "entry"
	SafeZoneEventExit  SafeZoneEventType = "exit"
)

// SafeZoneEvent is produced when a fix crosses a zone boundary. It is never persisted
// as such; it is projected into a SafeZoneActivity record.
type SafeZoneEvent struct {
	SafeZone  SafeZone          `json:"safeZone"`
	Type      SafeZoneEventType `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Location  Coordinate        `json:"location"`
}

// SafeZoneActivity is the dashboard record of a transition.
type SafeZoneActivity struct {
	ID           string            `json:"id"`
	SafeZoneID   string            `json:"safeZoneId"`
	SafeZoneName string            `json:"safeZoneName"`
	Type         SafeZoneEventType `json:"type"`
	Timestamp    time.Time         `json:"timestamp"`
}

// SafeZoneStatus is the aggregate view of monitoring exposed to the guardian UI.
type SafeZoneStatus struct {
	TotalActive     int           `json:"totalActive"`
	Inside          []SafeZone    `json:"inside"`
	Outside         []SafeZone    `json:"outside"`
	CurrentLocation LocationState `json:"currentLocation"`
	IsMonitoring    bool          `json:"isMonitoring"`
}

// GeofenceTransition is an OS-level region crossing reported by the device.
type GeofenceTransition struct {
	Type      SafeZoneEventType `json:"type"`
	Region    GeofenceRegion    `json:"region"`
	Timestamp time.Time         `json:"timestamp"`
}
