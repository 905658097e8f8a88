package service

import (
	"context"
	"time"

	"guardian/internal/domain/entity"
)

// WatchOptions controls how often the location stream delivers fixes. A fix is delivered
// when either the interval has passed or the device moved the distance, whichever comes first.
type WatchOptions struct {
	Accuracy    string
	MinInterval time.Duration
	MinDistance float64
}

// Subscription is a live location stream. Remove detaches it; after Remove returns no
// further fixes are delivered.
type Subscription interface {
	Remove()
}

// LocationProvider is the device location source.
type LocationProvider interface {
	RequestForegroundPermission(ctx context.Context) (entity.PermissionStatus, error)
	RequestBackgroundPermission(ctx context.Context) (entity.PermissionStatus, error)
	RequestNotificationPermission(ctx context.Context) (entity.PermissionStatus, error)

	// CurrentFix returns one fresh fix.
	CurrentFix(ctx context.Context, accuracy string) (*entity.LocationState, error)

	// Watch starts a continuous stream. onUpdate receives fixes in delivery order and
	// onError receives stream failures; neither is called after Remove returns.
	Watch(ctx context.Context, opts WatchOptions, onUpdate func(entity.LocationState), onError func(error)) (Subscription, error)
}

// Geofencer registers OS-level circular regions on the device for background wake-ups.
type Geofencer interface {
	// Available reports whether the device supports background geofencing.
	Available(ctx context.Context) bool

	// Start replaces the registered regions with regions.
	Start(ctx context.Context, regions []entity.GeofenceRegion) error

	// Stop unregisters every region.
	Stop(ctx context.Context) error
}
