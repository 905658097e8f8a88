package document

import (
	"context"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/repository"
)

type safeZoneRepository struct {
	doc *document[[]entity.SafeZone]
}

// NewSafeZoneRepository stores zones under kidmap_safe_zones.
func NewSafeZoneRepository(store repository.KeyValueStore) repository.SafeZoneRepository {
	return &safeZoneRepository{doc: newDocument[[]entity.SafeZone](store, constants.KeySafeZones)}
}

func (r *safeZoneRepository) List(ctx context.Context) ([]entity.SafeZone, error) {
	return r.doc.get(ctx, emptySlice[entity.SafeZone])
}

func (r *safeZoneRepository) Update(ctx context.Context, fn func([]entity.SafeZone) ([]entity.SafeZone, error)) ([]entity.SafeZone, error) {
	return r.doc.update(ctx, emptySlice[entity.SafeZone], fn)
}

type settingsRepository struct {
	doc *document[entity.ParentalSettings]
}

// NewSettingsRepository stores settings under kidmap_parental_settings.
func NewSettingsRepository(store repository.KeyValueStore) repository.SettingsRepository {
	return &settingsRepository{doc: newDocument[entity.ParentalSettings](store, constants.KeySettings)}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.ParentalSettings, error) {
	settings, err := r.doc.get(ctx, entity.DefaultParentalSettings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, fn func(*entity.ParentalSettings) error) (*entity.ParentalSettings, error) {
	settings, err := r.doc.update(ctx, entity.DefaultParentalSettings, func(s entity.ParentalSettings) (entity.ParentalSettings, error) {
		err := fn(&s)
		return s, err
	})
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

type dashboardRepository struct {
	doc *document[entity.DashboardData]
}

// NewDashboardRepository stores the dashboard under kidmap_dashboard_data.
func NewDashboardRepository(store repository.KeyValueStore) repository.DashboardRepository {
	return &dashboardRepository{doc: newDocument[entity.DashboardData](store, constants.KeyDashboardData)}
}

func emptyDashboard() entity.DashboardData {
	return entity.DashboardData{
		RecentCheckIns:   []entity.CheckIn{},
		SafeZoneActivity: []entity.SafeZoneActivity{},
	}
}

func (r *dashboardRepository) Get(ctx context.Context) (*entity.DashboardData, error) {
	dashboard, err := r.doc.get(ctx, emptyDashboard)
	if err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (r *dashboardRepository) Update(ctx context.Context, fn func(*entity.DashboardData) error) (*entity.DashboardData, error) {
	dashboard, err := r.doc.update(ctx, emptyDashboard, func(d entity.DashboardData) (entity.DashboardData, error) {
		err := fn(&d)
		return d, err
	})
	if err != nil {
		return nil, err
	}

	return &dashboard, nil
}

type checkInRepository struct {
	doc *document[[]entity.CheckInRequest]
}

// NewCheckInRepository stores check-in requests under kidmap_check_in_requests.
func NewCheckInRepository(store repository.KeyValueStore) repository.CheckInRepository {
	return &checkInRepository{doc: newDocument[[]entity.CheckInRequest](store, constants.KeyCheckInRequests)}
}

func (r *checkInRepository) List(ctx context.Context) ([]entity.CheckInRequest, error) {
	return r.doc.get(ctx, emptySlice[entity.CheckInRequest])
}

func (r *checkInRepository) Update(ctx context.Context, fn func([]entity.CheckInRequest) ([]entity.CheckInRequest, error)) ([]entity.CheckInRequest, error) {
	return r.doc.update(ctx, emptySlice[entity.CheckInRequest], fn)
}

type devicePingRepository struct {
	doc *document[[]entity.DevicePingRequest]
}

// NewDevicePingRepository stores device pings under kidmap_device_pings.
func NewDevicePingRepository(store repository.KeyValueStore) repository.DevicePingRepository {
	return &devicePingRepository{doc: newDocument[[]entity.DevicePingRequest](store, constants.KeyDevicePings)}
}

func (r *devicePingRepository) List(ctx context.Context) ([]entity.DevicePingRequest, error) {
	return r.doc.get(ctx, emptySlice[entity.DevicePingRequest])
}

func (r *devicePingRepository) Update(ctx context.Context, fn func([]entity.DevicePingRequest) ([]entity.DevicePingRequest, error)) ([]entity.DevicePingRequest, error) {
	return r.doc.update(ctx, emptySlice[entity.DevicePingRequest], fn)
}
