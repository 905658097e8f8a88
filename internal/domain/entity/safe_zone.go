package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// SafeZoneNotifications selects which transitions of a zone alert the guardian.
type SafeZoneNotifications struct {
	OnEntry bool `json:"onEntry"`
	OnExit  bool `json:"onExit"`
}

// SafeZone is a circular region the guardian wants to be told about.
type SafeZone struct {
	ID            string                `json:"id"`            // Stable unique identifier.
	Name          string                `json:"name"`          // Display label, e.g. "Home".
	Latitude      float64               `json:"latitude"`      // Center latitude.
	Longitude     float64               `json:"longitude"`     // Center longitude.
	Radius        float64               `json:"radius"`        // Radius in meters.
	IsActive      bool                  `json:"isActive"`      // Inactive zones are never monitored.
	CreatedAt     time.Time             `json:"createdAt"`     // Timestamp of when the zone was created.
	Notifications SafeZoneNotifications `json:"notifications"` // Per-transition alert switches.
}

// Center returns the zone center as an orb point.
func (z SafeZone) Center() orb.Point {
	return orb.Point{z.Longitude, z.Latitude}
}

// NotifiesOn reports whether the zone wants alerts for the given transition.
func (z SafeZone) NotifiesOn(eventType SafeZoneEventType) bool {
	switch eventType {
	case SafeZoneEventEntry:
		return z.Notifications.OnEntry
	case SafeZoneEventExit:
		return z.Notifications.OnExit
	default:
		return false
	}
}

// ActiveSafeZones filters the zones that take part in monitoring, preserving order.
func ActiveSafeZones(zones []SafeZone) []SafeZone {
	active := make([]SafeZone, 0, len(zones))
	for _, zone := range zones {
		if zone.IsActive {
			active = append(active, zone)
		}
	}

	return active
}

// GeofenceRegion is a circular region registered with the device OS for background wake-ups.
type GeofenceRegion struct {
	Identifier string  `json:"identifier"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     float64 `json:"radius"`
}

// Region converts the zone to its geofence registration.
func (z SafeZone) Region() GeofenceRegion {
	return GeofenceRegion{
		Identifier: z.ID,
		Latitude:   z.Latitude,
		Longitude:  z.Longitude,
		Radius:     z.Radius,
	}
}
