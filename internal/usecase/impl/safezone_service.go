package impl

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/usecase"
)

type safeZoneService struct {
	safeZoneRepo  repository.SafeZoneRepository
	dashboardRepo repository.DashboardRepository
	feed          usecase.ChangeFeed
	clock         clockwork.Clock
}

// NewSafeZoneService creates the safe zone management service. Every write is announced
// on feed so a running monitor picks it up.
func NewSafeZoneService(
	safeZoneRepo repository.SafeZoneRepository,
	dashboardRepo repository.DashboardRepository,
	feed usecase.ChangeFeed,
	clock clockwork.Clock,
) usecase.SafeZoneUsecase {
	return &safeZoneService{
		safeZoneRepo:  safeZoneRepo,
		dashboardRepo: dashboardRepo,
		feed:          feed,
		clock:         clock,
	}
}

func (s *safeZoneService) ListSafeZones(ctx context.Context) ([]entity.SafeZone, error) {
	zones, err := s.safeZoneRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list safe zones: %w", err)
	}

	return zones, nil
}

func (s *safeZoneService) AddSafeZone(ctx context.Context, input *usecase.SafeZoneInput) (*entity.SafeZone, error) {
	zone := entity.SafeZone{
		ID:            "safe_zone_" + uuid.NewString(),
		Name:          input.Name,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Radius:        input.Radius,
		IsActive:      true,
		CreatedAt:     s.clock.Now(),
		Notifications: entity.SafeZoneNotifications{OnEntry: true, OnExit: true},
	}
	if input.IsActive != nil {
		zone.IsActive = *input.IsActive
	}
	if input.Notifications != nil {
		zone.Notifications = *input.Notifications
	}

	if _, err := s.safeZoneRepo.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		return append(zones, zone), nil
	}); err != nil {
		return nil, fmt.Errorf("failed to add safe zone: %w", err)
	}
	s.feed.Publish(ctx)

	return &zone, nil
}

func (s *safeZoneService) UpdateSafeZone(ctx context.Context, id string, update *usecase.SafeZoneUpdate) (*entity.SafeZone, error) {
	return s.modify(ctx, id, func(zone *entity.SafeZone) {
		applySafeZoneUpdate(zone, update)
	})
}

func (s *safeZoneService) ToggleSafeZone(ctx context.Context, id string) (*entity.SafeZone, error) {
	return s.modify(ctx, id, func(zone *entity.SafeZone) {
		zone.IsActive = !zone.IsActive
	})
}

func (s *safeZoneService) DeleteSafeZone(ctx context.Context, id string) error {
	if _, err := s.safeZoneRepo.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		index := slices.IndexFunc(zones, func(zone entity.SafeZone) bool { return zone.ID == id })
		if index < 0 {
			return nil, domainerrors.ErrSafeZoneNotFound
		}

		return slices.Delete(zones, index, index+1), nil
	}); err != nil {
		return fmt.Errorf("failed to delete safe zone: %w", err)
	}
	s.feed.Publish(ctx)

	return nil
}

func (s *safeZoneService) ListSafeZoneActivity(ctx context.Context) ([]entity.SafeZoneActivity, error) {
	dashboard, err := s.dashboardRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return dashboard.SafeZoneActivity, nil
}

func (s *safeZoneService) modify(ctx context.Context, id string, fn func(zone *entity.SafeZone)) (*entity.SafeZone, error) {
	var updated entity.SafeZone

	if _, err := s.safeZoneRepo.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		index := slices.IndexFunc(zones, func(zone entity.SafeZone) bool { return zone.ID == id })
		if index < 0 {
			return nil, domainerrors.ErrSafeZoneNotFound
		}
		fn(&zones[index])
		updated = zones[index]

		return zones, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to update safe zone: %w", err)
	}
	s.feed.Publish(ctx)

	return &updated, nil
}

func applySafeZoneUpdate(zone *entity.SafeZone, update *usecase.SafeZoneUpdate) {
	if update.Name != nil {
		zone.Name = *update.Name
	}
	if update.Latitude != nil {
		zone.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		zone.Longitude = *update.Longitude
	}
	if update.Radius != nil {
		zone.Radius = *update.Radius
	}
	if update.IsActive != nil {
		zone.IsActive = *update.IsActive
	}
	if update.Notifications != nil {
		zone.Notifications = *update.Notifications
	}
}
