package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// SafeZoneInput carries the fields of a new safe zone
type SafeZoneInput struct {
	Name          string                        `json:"name" validate:"required,max=100"`
	Latitude      float64                       `json:"latitude" validate:"latitude"`
	Longitude     float64                       `json:"longitude" validate:"longitude"`
	Radius        float64                       `json:"radius" validate:"gt=0,lte=50000"`
	IsActive      *bool                         `json:"isActive"`
	Notifications *entity.SafeZoneNotifications `json:"notifications"`
}

// SafeZoneUpdate carries the fields to change on an existing zone; nil fields are kept
type SafeZoneUpdate struct {
	Name          *string                       `json:"name" validate:"omitempty,max=100"`
	Latitude      *float64                      `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64                      `json:"longitude" validate:"omitempty,longitude"`
	Radius        *float64                      `json:"radius" validate:"omitempty,gt=0,lte=50000"`
	IsActive      *bool                         `json:"isActive"`
	Notifications *entity.SafeZoneNotifications `json:"notifications"`
}

// SafeZoneUsecase defines the safe zone management use cases
type SafeZoneUsecase interface {
	ListSafeZones(ctx context.Context) ([]entity.SafeZone, error)
	AddSafeZone(ctx context.Context, input *SafeZoneInput) (*entity.SafeZone, error)
	UpdateSafeZone(ctx context.Context, id string, update *SafeZoneUpdate) (*entity.SafeZone, error)
	DeleteSafeZone(ctx context.Context, id string) error
	ToggleSafeZone(ctx context.Context, id string) (*entity.SafeZone, error)

	// ListSafeZoneActivity returns the activity log, most recent first
	ListSafeZoneActivity(ctx context.Context) ([]entity.SafeZoneActivity, error)
}
