package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/usecase"
)

const (
	recentCheckInLimit = 10
	currentChildID     = "current_child"
)

// ParentalServiceParams holds dependencies for ParentalService, injected by Fx
type ParentalServiceParams struct {
	fx.In

	Logger        *slog.Logger
	Clock         clockwork.Clock
	Feed          usecase.ChangeFeed
	SettingsRepo  repository.SettingsRepository
	DashboardRepo repository.DashboardRepository
	CheckInRepo   repository.CheckInRepository
	PingRepo      repository.DevicePingRepository
	Messenger     service.DeviceMessenger `optional:"true"`
}

type parentalService struct {
	logger        *slog.Logger
	clock         clockwork.Clock
	feed          usecase.ChangeFeed
	settingsRepo  repository.SettingsRepository
	dashboardRepo repository.DashboardRepository
	checkInRepo   repository.CheckInRepository
	pingRepo      repository.DevicePingRepository
	messenger     service.DeviceMessenger
}

// NewParentalService creates the settings, dashboard, check-in and ping service
func NewParentalService(params ParentalServiceParams) usecase.ParentalUsecase {
	return &parentalService{
		logger:        params.Logger,
		clock:         params.Clock,
		feed:          params.Feed,
		settingsRepo:  params.SettingsRepo,
		dashboardRepo: params.DashboardRepo,
		checkInRepo:   params.CheckInRepo,
		pingRepo:      params.PingRepo,
		messenger:     params.Messenger,
	}
}

func (s *parentalService) GetSettings(ctx context.Context) (*entity.ParentalSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, nil
}

// SaveSettings replaces the settings document. A plaintext PIN is never accepted from callers.
func (s *parentalService) SaveSettings(ctx context.Context, incoming *entity.ParentalSettings) (*entity.ParentalSettings, error) {
	saved, err := s.settingsRepo.Update(ctx, func(settings *entity.ParentalSettings) error {
		*settings = *incoming
		settings.LegacyParentPin = ""
		if settings.EmergencyContacts == nil {
			settings.EmergencyContacts = []entity.EmergencyContact{}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.feed.Publish(ctx)

	return saved, nil
}

func (s *parentalService) AddEmergencyContact(ctx context.Context, input *usecase.EmergencyContactInput) (*entity.EmergencyContact, error) {
	contact := entity.EmergencyContact{
		ID:               "contact_" + uuid.NewString(),
		Name:             input.Name,
		Phone:            input.Phone,
		Relationship:     input.Relationship,
		IsPrimary:        input.IsPrimary,
		CanReceiveAlerts: input.CanReceiveAlerts,
	}

	if _, err := s.settingsRepo.Update(ctx, func(settings *entity.ParentalSettings) error {
		settings.EmergencyContacts = append(settings.EmergencyContacts, contact)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to add emergency contact: %w", err)
	}
	s.feed.Publish(ctx)

	return &contact, nil
}

func (s *parentalService) UpdateEmergencyContact(ctx context.Context, id string, input *usecase.EmergencyContactInput) (*entity.EmergencyContact, error) {
	var updated entity.EmergencyContact

	if _, err := s.settingsRepo.Update(ctx, func(settings *entity.ParentalSettings) error {
		index := slices.IndexFunc(settings.EmergencyContacts, func(c entity.EmergencyContact) bool { return c.ID == id })
		if index < 0 {
			return domainerrors.ErrContactNotFound
		}
		settings.EmergencyContacts[index] = entity.EmergencyContact{
			ID:               id,
			Name:             input.Name,
			Phone:            input.Phone,
			Relationship:     input.Relationship,
			IsPrimary:        input.IsPrimary,
			CanReceiveAlerts: input.CanReceiveAlerts,
		}
		updated = settings.EmergencyContacts[index]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to update emergency contact: %w", err)
	}
	s.feed.Publish(ctx)

	return &updated, nil
}

func (s *parentalService) DeleteEmergencyContact(ctx context.Context, id string) error {
	if _, err := s.settingsRepo.Update(ctx, func(settings *entity.ParentalSettings) error {
		index := slices.IndexFunc(settings.EmergencyContacts, func(c entity.EmergencyContact) bool { return c.ID == id })
		if index < 0 {
			return domainerrors.ErrContactNotFound
		}
		settings.EmergencyContacts = slices.Delete(settings.EmergencyContacts, index, index+1)

		return nil
	}); err != nil {
		return fmt.Errorf("failed to delete emergency contact: %w", err)
	}
	s.feed.Publish(ctx)

	return nil
}

func (s *parentalService) GetDashboard(ctx context.Context) (*entity.DashboardData, error) {
	dashboard, err := s.dashboardRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return dashboard, nil
}

func (s *parentalService) AddCheckInToDashboard(ctx context.Context, checkIn entity.CheckIn) error {
	if checkIn.ID == "" {
		checkIn.ID = "check_in_" + uuid.NewString()
	}
	if checkIn.Timestamp.IsZero() {
		checkIn.Timestamp = s.clock.Now()
	}

	if _, err := s.dashboardRepo.Update(ctx, func(dashboard *entity.DashboardData) error {
		dashboard.PrependCheckIn(checkIn, recentCheckInLimit)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to add check-in to dashboard: %w", err)
	}

	return nil
}

func (s *parentalService) UpdateLastKnownLocation(ctx context.Context, location entity.LastKnownLocation) error {
	if location.Timestamp.IsZero() {
		location.Timestamp = s.clock.Now()
	}

	if _, err := s.dashboardRepo.Update(ctx, func(dashboard *entity.DashboardData) error {
		dashboard.LastKnownLocation = &location
		return nil
	}); err != nil {
		return fmt.Errorf("failed to update last known location: %w", err)
	}

	return nil
}

func (s *parentalService) ListCheckInRequests(ctx context.Context) ([]entity.CheckInRequest, error) {
	requests, err := s.checkInRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-in requests: %w", err)
	}

	return requests, nil
}

func (s *parentalService) RequestCheckIn(ctx context.Context, message string, isUrgent bool) (*entity.CheckInRequest, error) {
	request := entity.CheckInRequest{
		ID:          "check_in_" + uuid.NewString(),
		ChildID:     currentChildID,
		RequestedAt: s.clock.Now(),
		Message:     message,
		IsUrgent:    isUrgent,
		Status:      entity.CheckInStatusPending,
	}

	if _, err := s.checkInRepo.Update(ctx, func(requests []entity.CheckInRequest) ([]entity.CheckInRequest, error) {
		return append(requests, request), nil
	}); err != nil {
		return nil, fmt.Errorf("failed to store check-in request: %w", err)
	}

	if s.messenger != nil {
		if err := s.messenger.SendCheckInRequest(ctx, &request); err != nil {
			s.logger.Warn("Failed to deliver check-in request to device",
				slog.String("checkInId", request.ID),
				slog.Any("error", err),
			)
		}
	}

	return &request, nil
}

func (s *parentalService) CompleteCheckIn(ctx context.Context, id string, location *entity.CheckInLocation) (*entity.CheckInRequest, error) {
	var completed entity.CheckInRequest

	if _, err := s.checkInRepo.Update(ctx, func(requests []entity.CheckInRequest) ([]entity.CheckInRequest, error) {
		index := slices.IndexFunc(requests, func(r entity.CheckInRequest) bool { return r.ID == id })
		if index < 0 {
			return nil, domainerrors.ErrCheckInNotFound
		}
		now := s.clock.Now()
		requests[index].Status = entity.CheckInStatusCompleted
		requests[index].CompletedAt = &now
		requests[index].Location = location
		completed = requests[index]

		return requests, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to complete check-in: %w", err)
	}

	return &completed, nil
}

func (s *parentalService) ListDevicePings(ctx context.Context) ([]entity.DevicePingRequest, error) {
	pings, err := s.pingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list device pings: %w", err)
	}

	return pings, nil
}

// SendDevicePing stores a pending ping and hands it to the device. A ping the device
// link refuses is kept with status failed.
func (s *parentalService) SendDevicePing(ctx context.Context, pingType entity.DevicePingType, message string) (*entity.DevicePingRequest, error) {
	switch pingType {
	case entity.DevicePingLocation, entity.DevicePingRing, entity.DevicePingMessage:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown ping type " + string(pingType))
	}

	ping := entity.DevicePingRequest{
		ID:          "ping_" + uuid.NewString(),
		Type:        pingType,
		Message:     message,
		RequestedAt: s.clock.Now(),
		Status:      entity.DevicePingPending,
	}

	if _, err := s.pingRepo.Update(ctx, func(pings []entity.DevicePingRequest) ([]entity.DevicePingRequest, error) {
		return append(pings, ping), nil
	}); err != nil {
		return nil, fmt.Errorf("failed to store device ping: %w", err)
	}

	if s.messenger == nil {
		return &ping, nil
	}

	if err := s.messenger.SendPing(ctx, &ping); err != nil {
		s.logger.Warn("Failed to deliver ping to device", slog.String("pingId", ping.ID), slog.Any("error", err))

		ping.Status = entity.DevicePingFailed
		if _, err := s.pingRepo.Update(ctx, func(pings []entity.DevicePingRequest) ([]entity.DevicePingRequest, error) {
			for i := range pings {
				if pings[i].ID == ping.ID && pings[i].Status == entity.DevicePingPending {
					pings[i].Status = entity.DevicePingFailed
				}
			}
			return pings, nil
		}); err != nil {
			return nil, fmt.Errorf("failed to mark device ping failed: %w", err)
		}
	}

	return &ping, nil
}

func (s *parentalService) AcknowledgePing(ctx context.Context, id string, location *entity.Coordinate) (*entity.DevicePingRequest, error) {
	var acknowledged entity.DevicePingRequest

	if _, err := s.pingRepo.Update(ctx, func(pings []entity.DevicePingRequest) ([]entity.DevicePingRequest, error) {
		index := slices.IndexFunc(pings, func(p entity.DevicePingRequest) bool { return p.ID == id })
		if index < 0 {
			return nil, domainerrors.ErrPingNotFound
		}
		pings[index].Status = entity.DevicePingAcknowledged
		pings[index].Response = &entity.DevicePingResponse{
			Timestamp: s.clock.Now(),
			Location:  location,
		}
		acknowledged = pings[index]

		return pings, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to acknowledge ping: %w", err)
	}

	return &acknowledged, nil
}
