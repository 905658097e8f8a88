package mqtt

import (
	"time"

	"guardian/internal/domain/entity"
)

// Topics names every topic of one paired device under <prefix>/devices/<deviceId>.
type Topics struct {
	base string
}

func NewTopics(prefix, deviceID string) Topics {
	return Topics{base: prefix + "/devices/" + deviceID}
}

// Location carries fixes published by the device (device -> service).
func (t Topics) Location() string { return t.base + "/location" }

// LocationWatch is the retained watch command (service -> device).
func (t Topics) LocationWatch() string { return t.base + "/location/watch" }

// LocationRequest asks for one fresh fix (service -> device).
func (t Topics) LocationRequest() string { return t.base + "/location/request" }

// LocationReply answers a LocationRequest (device -> service).
func (t Topics) LocationReply() string { return t.base + "/location/reply" }

func (t Topics) PermissionRequest() string { return t.base + "/permissions/request" }

func (t Topics) PermissionReply() string { return t.base + "/permissions/reply" }

// Geofences is the retained region list the device registers with its OS.
func (t Topics) Geofences() string { return t.base + "/geofences" }

// GeofenceEvents carries OS region crossings (device -> service).
func (t Topics) GeofenceEvents() string { return t.base + "/geofence-events" }

func (t Topics) Alerts() string { return t.base + "/alerts" }

func (t Topics) Pings() string { return t.base + "/pings" }

func (t Topics) PingAcks() string { return t.base + "/pings/ack" }

func (t Topics) CheckIns() string { return t.base + "/check-ins" }

func (t Topics) CheckInReplies() string { return t.base + "/check-ins/complete" }

// Permission kinds carried in PermissionRequest.Kind.
const (
	PermissionForeground   = "location.foreground"
	PermissionBackground   = "location.background"
	PermissionNotification = "notifications"
)

// PermissionRequest asks the device to prompt for a permission.
type PermissionRequest struct {
	RequestID string `json:"requestId"`
	Kind      string `json:"kind"`
}

// PermissionReply is the answer to a PermissionRequest.
type PermissionReply struct {
	RequestID string                  `json:"requestId"`
	Kind      string                  `json:"kind"`
	Status    entity.PermissionStatus `json:"status"`
}

// FixRequest asks for one fix at the given accuracy.
type FixRequest struct {
	RequestID string `json:"requestId"`
	Accuracy  string `json:"accuracy"`
}

// FixReply answers a FixRequest. Error is set when the device could not get a fix.
type FixReply struct {
	RequestID string    `json:"requestId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// WatchCommand turns the continuous location stream of the device on or off.
type WatchCommand struct {
	Active        bool    `json:"active"`
	Accuracy      string  `json:"accuracy,omitempty"`
	MinIntervalMs int64   `json:"minIntervalMs,omitempty"`
	MinDistance   float64 `json:"minDistance,omitempty"`
}

// GeofenceCommand replaces the regions registered on the device.
type GeofenceCommand struct {
	Regions []entity.GeofenceRegion `json:"regions"`
}

// AlertCommand shows a blocking alert on the device.
type AlertCommand struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// PingAck is the device answer to a ping.
type PingAck struct {
	PingID   string             `json:"pingId"`
	Location *entity.Coordinate `json:"location,omitempty"`
}

// CheckInReply completes a check-in request from the device.
type CheckInReply struct {
	CheckInID string                  `json:"checkInId"`
	Location  *entity.CheckInLocation `json:"location,omitempty"`
}

// requestIDProbe extracts the correlation id from any reply payload.
type requestIDProbe struct {
	RequestID string `json:"requestId"`
}
