package repository

import (
	"context"
	"errors"

	"guardian/internal/domain/entity"
)

// ErrCorruptRecord is returned when a persisted document cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt persisted record")

// SafeZoneRepository stores the full list of configured safe zones.
type SafeZoneRepository interface {
	// List returns every zone in insertion order. A missing document yields an empty list.
	List(ctx context.Context) ([]entity.SafeZone, error)

	// Update reads the list, applies fn and writes the result back as one unit.
	Update(ctx context.Context, fn func(zones []entity.SafeZone) ([]entity.SafeZone, error)) ([]entity.SafeZone, error)
}

// SettingsRepository stores the parental settings document.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when none are stored.
	Get(ctx context.Context) (*entity.ParentalSettings, error)

	// Update reads the settings, applies fn and writes the result back as one unit.
	Update(ctx context.Context, fn func(settings *entity.ParentalSettings) error) (*entity.ParentalSettings, error)
}

// DashboardRepository stores the guardian dashboard document.
type DashboardRepository interface {
	Get(ctx context.Context) (*entity.DashboardData, error)
	Update(ctx context.Context, fn func(dashboard *entity.DashboardData) error) (*entity.DashboardData, error)
}

// CheckInRepository stores the list of check-in requests.
type CheckInRepository interface {
	List(ctx context.Context) ([]entity.CheckInRequest, error)
	Update(ctx context.Context, fn func(requests []entity.CheckInRequest) ([]entity.CheckInRequest, error)) ([]entity.CheckInRequest, error)
}

// DevicePingRepository stores the list of device ping requests.
type DevicePingRepository interface {
	List(ctx context.Context) ([]entity.DevicePingRequest, error)
	Update(ctx context.Context, fn func(pings []entity.DevicePingRequest) ([]entity.DevicePingRequest, error)) ([]entity.DevicePingRequest, error)
}

// AuthAttemptRepository stores the failed PIN attempt record in the general store.
type AuthAttemptRepository interface {
	// Get returns nil when no record exists and ErrCorruptRecord when it cannot be decoded.
	Get(ctx context.Context) (*entity.AuthAttemptRecord, error)
	Save(ctx context.Context, record *entity.AuthAttemptRecord) error
	Delete(ctx context.Context) error
}

// PinCredentialRepository stores the PIN hash and salt in the secure store.
type PinCredentialRepository interface {
	// Get returns nil when either the hash or the salt is missing.
	Get(ctx context.Context) (*entity.PinCredential, error)
	Save(ctx context.Context, credential *entity.PinCredential) error
}
