package usecase

import (
	"context"

	"guardian/internal/domain/entity"
)

// EmergencyContactInput carries the fields of an emergency contact
type EmergencyContactInput struct {
	Name             string `json:"name" validate:"required,max=100"`
	Phone            string `json:"phone" validate:"required,max=32"`
	Relationship     string `json:"relationship" validate:"max=50"`
	IsPrimary        bool   `json:"isPrimary"`
	CanReceiveAlerts bool   `json:"canReceiveAlerts"`
}

// ParentalUsecase defines settings, dashboard, check-in and device ping use cases
type ParentalUsecase interface {
	GetSettings(ctx context.Context) (*entity.ParentalSettings, error)
	SaveSettings(ctx context.Context, settings *entity.ParentalSettings) (*entity.ParentalSettings, error)

	AddEmergencyContact(ctx context.Context, input *EmergencyContactInput) (*entity.EmergencyContact, error)
	UpdateEmergencyContact(ctx context.Context, id string, input *EmergencyContactInput) (*entity.EmergencyContact, error)
	DeleteEmergencyContact(ctx context.Context, id string) error

	GetDashboard(ctx context.Context) (*entity.DashboardData, error)
	AddCheckInToDashboard(ctx context.Context, checkIn entity.CheckIn) error
	UpdateLastKnownLocation(ctx context.Context, location entity.LastKnownLocation) error

	ListCheckInRequests(ctx context.Context) ([]entity.CheckInRequest, error)
	RequestCheckIn(ctx context.Context, message string, isUrgent bool) (*entity.CheckInRequest, error)
	CompleteCheckIn(ctx context.Context, id string, location *entity.CheckInLocation) (*entity.CheckInRequest, error)

	ListDevicePings(ctx context.Context) ([]entity.DevicePingRequest, error)
	SendDevicePing(ctx context.Context, pingType entity.DevicePingType, message string) (*entity.DevicePingRequest, error)
	AcknowledgePing(ctx context.Context, id string, location *entity.Coordinate) (*entity.DevicePingRequest, error)
}
