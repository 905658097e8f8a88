package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/infra/persistence/document"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/persistence/memory"
	mockSvc "guardian/internal/mocks/service"
	"guardian/internal/usecase"
)

func newParentalServiceForTest(t *testing.T, messenger service.DeviceMessenger) (usecase.ParentalUsecase, clockwork.FakeClock, *int) {
	t.Helper()

	store := kv.NewKeyValueStore(memory.New())
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	feed := NewChangeFeed()
	published := 0
	feed.Subscribe(func(context.Context) { published++ })

	svc := NewParentalService(ParentalServiceParams{
		Logger:        slog.New(slog.DiscardHandler),
		Clock:         clock,
		Feed:          feed,
		SettingsRepo:  document.NewSettingsRepository(store),
		DashboardRepo: document.NewDashboardRepository(store),
		CheckInRepo:   document.NewCheckInRepository(store),
		PingRepo:      document.NewDevicePingRepository(store),
		Messenger:     messenger,
	})

	return svc, clock, &published
}

func TestParentalService_SaveSettingsStripsPlainPin(t *testing.T) {
	svc, _, published := newParentalServiceForTest(t, nil)
	ctx := context.Background()

	settings := entity.DefaultParentalSettings()
	settings.SafeZoneAlerts = false
	settings.LegacyParentPin = "1234"
	settings.EmergencyContacts = nil

	saved, err := svc.SaveSettings(ctx, &settings)
	require.NoError(t, err)
	assert.False(t, saved.SafeZoneAlerts)
	assert.Empty(t, saved.LegacyParentPin)
	assert.NotNil(t, saved.EmergencyContacts)
	assert.Equal(t, 1, *published)

	loaded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.SafeZoneAlerts)
}

func TestParentalService_EmergencyContacts(t *testing.T) {
	svc, _, _ := newParentalServiceForTest(t, nil)
	ctx := context.Background()

	contact, err := svc.AddEmergencyContact(ctx, &usecase.EmergencyContactInput{Name: "Mom", Phone: "555-0100", Relationship: "Parent", IsPrimary: true})
	require.NoError(t, err)
	assert.Contains(t, contact.ID, "contact_")

	updated, err := svc.UpdateEmergencyContact(ctx, contact.ID, &usecase.EmergencyContactInput{Name: "Mom", Phone: "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, contact.ID, updated.ID)

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings.EmergencyContacts, 2, "default emergency services contact plus the new one")

	require.NoError(t, svc.DeleteEmergencyContact(ctx, "emergency_911"))
	err = svc.DeleteEmergencyContact(ctx, "emergency_911")
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)

	_, err = svc.UpdateEmergencyContact(ctx, "missing", &usecase.EmergencyContactInput{Name: "x", Phone: "1"})
	require.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestParentalService_DashboardCheckInsCapped(t *testing.T) {
	svc, _, _ := newParentalServiceForTest(t, nil)
	ctx := context.Background()

	for i := range 12 {
		require.NoError(t, svc.AddCheckInToDashboard(ctx, entity.CheckIn{PlaceName: fmt.Sprintf("place %d", i)}))
	}

	dashboard, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dashboard.RecentCheckIns, 10)
	assert.Equal(t, "place 11", dashboard.RecentCheckIns[0].PlaceName)
	assert.Equal(t, "place 2", dashboard.RecentCheckIns[9].PlaceName)
	assert.NotEmpty(t, dashboard.RecentCheckIns[0].ID)
}

func TestParentalService_LastKnownLocation(t *testing.T) {
	svc, clock, _ := newParentalServiceForTest(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.UpdateLastKnownLocation(ctx, entity.LastKnownLocation{Latitude: 1, Longitude: 2, PlaceName: "Library"}))

	dashboard, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, dashboard.LastKnownLocation)
	assert.Equal(t, "Library", dashboard.LastKnownLocation.PlaceName)
	assert.Equal(t, clock.Now(), dashboard.LastKnownLocation.Timestamp)
}

func TestParentalService_CheckInFlow(t *testing.T) {
	messenger := mockSvc.NewMockDeviceMessenger(t)
	svc, clock, _ := newParentalServiceForTest(t, messenger)
	ctx := context.Background()
	messenger.EXPECT().SendCheckInRequest(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	request, err := svc.RequestCheckIn(ctx, "Where are you?", true)
	require.NoError(t, err, "delivery failure does not fail the request")
	assert.Equal(t, "current_child", request.ChildID)
	assert.Equal(t, entity.CheckInStatusPending, request.Status)
	assert.True(t, request.IsUrgent)

	clock.Advance(time.Minute)
	completed, err := svc.CompleteCheckIn(ctx, request.ID, &entity.CheckInLocation{Latitude: 1, Longitude: 2, PlaceName: "School"})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckInStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, clock.Now(), *completed.CompletedAt)
	assert.Equal(t, "School", completed.Location.PlaceName)

	_, err = svc.CompleteCheckIn(ctx, "missing", nil)
	require.ErrorIs(t, err, domainerrors.ErrCheckInNotFound)

	requests, err := svc.ListCheckInRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, entity.CheckInStatusCompleted, requests[0].Status)
}

func TestParentalService_PingFlow(t *testing.T) {
	messenger := mockSvc.NewMockDeviceMessenger(t)
	svc, clock, _ := newParentalServiceForTest(t, messenger)
	ctx := context.Background()
	messenger.EXPECT().
		SendPing(mock.Anything, mock.MatchedBy(func(p *entity.DevicePingRequest) bool { return p.Type == entity.DevicePingRing })).
		Return(nil).
		Once()

	ping, err := svc.SendDevicePing(ctx, entity.DevicePingRing, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DevicePingPending, ping.Status)
	assert.Contains(t, ping.ID, "ping_")

	clock.Advance(10 * time.Second)
	location := &entity.Coordinate{Latitude: 40.7, Longitude: -74}
	acked, err := svc.AcknowledgePing(ctx, ping.ID, location)
	require.NoError(t, err)
	assert.Equal(t, entity.DevicePingAcknowledged, acked.Status)
	require.NotNil(t, acked.Response)
	assert.Equal(t, clock.Now(), acked.Response.Timestamp)
	assert.Equal(t, location, acked.Response.Location)

	_, err = svc.AcknowledgePing(ctx, "missing", nil)
	require.ErrorIs(t, err, domainerrors.ErrPingNotFound)

	_, err = svc.SendDevicePing(ctx, "vibrate", "")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestParentalService_PingDeliveryFailure(t *testing.T) {
	messenger := mockSvc.NewMockDeviceMessenger(t)
	svc, _, _ := newParentalServiceForTest(t, messenger)
	ctx := context.Background()
	messenger.EXPECT().SendPing(mock.Anything, mock.Anything).Return(assert.AnError).Once()

	ping, err := svc.SendDevicePing(ctx, entity.DevicePingMessage, "Dinner is ready")
	require.NoError(t, err)
	assert.Equal(t, entity.DevicePingFailed, ping.Status)

	pings, err := svc.ListDevicePings(ctx)
	require.NoError(t, err)
	require.Len(t, pings, 1)
	assert.Equal(t, entity.DevicePingFailed, pings[0].Status)
	assert.Equal(t, "Dinner is ready", pings[0].Message)
}
