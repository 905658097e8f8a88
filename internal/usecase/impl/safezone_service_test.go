package impl

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/infra/persistence/document"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/persistence/memory"
	"guardian/internal/usecase"
)

func newSafeZoneServiceForTest(t *testing.T) (usecase.SafeZoneUsecase, *int) {
	t.Helper()

	store := kv.NewKeyValueStore(memory.New())
	feed := NewChangeFeed()
	published := 0
	feed.Subscribe(func(context.Context) { published++ })

	svc := NewSafeZoneService(
		document.NewSafeZoneRepository(store),
		document.NewDashboardRepository(store),
		feed,
		clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)),
	)

	return svc, &published
}

func TestSafeZoneService_AddDefaults(t *testing.T) {
	svc, published := newSafeZoneServiceForTest(t)
	ctx := context.Background()

	zone, err := svc.AddSafeZone(ctx, &usecase.SafeZoneInput{Name: "Home", Latitude: 40.7128, Longitude: -74.006, Radius: 100})
	require.NoError(t, err)

	assert.Contains(t, zone.ID, "safe_zone_")
	assert.True(t, zone.IsActive)
	assert.True(t, zone.Notifications.OnEntry)
	assert.True(t, zone.Notifications.OnExit)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), zone.CreatedAt)
	assert.Equal(t, 1, *published)

	zones, err := svc.ListSafeZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, zone.ID, zones[0].ID)
}

func TestSafeZoneService_UpdateToggleDelete(t *testing.T) {
	svc, published := newSafeZoneServiceForTest(t)
	ctx := context.Background()

	inactive := false
	zone, err := svc.AddSafeZone(ctx, &usecase.SafeZoneInput{Name: "School", Radius: 200, IsActive: &inactive})
	require.NoError(t, err)
	other, err := svc.AddSafeZone(ctx, &usecase.SafeZoneInput{Name: "Park", Radius: 50})
	require.NoError(t, err)
	assert.False(t, zone.IsActive)

	name := "Primary School"
	radius := 250.0
	updated, err := svc.UpdateSafeZone(ctx, zone.ID, &usecase.SafeZoneUpdate{Name: &name, Radius: &radius})
	require.NoError(t, err)
	assert.Equal(t, "Primary School", updated.Name)
	assert.Equal(t, 250.0, updated.Radius)
	assert.False(t, updated.IsActive, "unset fields are kept")

	toggled, err := svc.ToggleSafeZone(ctx, zone.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	require.NoError(t, svc.DeleteSafeZone(ctx, zone.ID))
	zones, err := svc.ListSafeZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, other.ID, zones[0].ID)
	assert.Equal(t, 5, *published)
}

func TestSafeZoneService_UnknownZone(t *testing.T) {
	svc, published := newSafeZoneServiceForTest(t)
	ctx := context.Background()

	_, err := svc.ToggleSafeZone(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrSafeZoneNotFound)

	err = svc.DeleteSafeZone(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrSafeZoneNotFound)

	assert.Zero(t, *published, "failed writes are not announced")
}

func TestSafeZoneService_ActivityEmptyByDefault(t *testing.T) {
	svc, _ := newSafeZoneServiceForTest(t)

	activity, err := svc.ListSafeZoneActivity(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, activity)
	assert.Empty(t, activity)
}
