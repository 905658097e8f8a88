package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// StatusListener receives the monitor status after every change. status is nil until
// the first location fix.
type StatusListener func(status *entity.SafeZoneStatus)

// SafeZoneMonitorUsecase defines the safe zone monitoring state machine
type SafeZoneMonitorUsecase interface {
	// Initialize loads zones and settings, follows their changes and auto-starts monitoring when allowed
	Initialize(ctx context.Context) error

	// Dispose stops following changes and force-stops monitoring
	Dispose(ctx context.Context) error

	// StartMonitoring requests permissions, takes an initial fix and subscribes to the location stream.
	// It is a no-op while monitoring.
	StartMonitoring(ctx context.Context) error

	// StopMonitoring detaches the location stream. No fix is processed after it returns.
	StopMonitoring()

	// IsMonitoring reports whether the location stream is attached
	IsMonitoring() bool

	// CurrentSafeZoneStatus returns nil before the first fix
	CurrentSafeZoneStatus() *entity.SafeZoneStatus

	// Memberships returns a copy of the zone id to inside mapping
	Memberships() map[string]bool

	// Subscribe registers a status listener and returns its removal function
	Subscribe(listener StatusListener) (unsubscribe func())

	// HandleGeofenceEvent applies an OS-level region crossing reported by the device
	HandleGeofenceEvent(ctx context.Context, transition entity.GeofenceTransition) error
}

// ChangeFeed announces that safe zones or parental settings were written.
type ChangeFeed interface {
	Publish(ctx context.Context)
	Subscribe(fn func(ctx context.Context)) (unsubscribe func())
}
