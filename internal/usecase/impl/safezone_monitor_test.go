package impl

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/geo"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/infra/persistence/document"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/persistence/memory"
	mockSvc "guardian/internal/mocks/service"
	"guardian/internal/usecase"
)

var homeCenter = entity.Coordinate{Latitude: 40.7128, Longitude: -74.006}

// fakeLocationProvider drives the monitor with scripted fixes.
type fakeLocationProvider struct {
	mu         sync.Mutex
	foreground entity.PermissionStatus
	fix        *entity.LocationState
	fixErr     error
	onUpdate   func(entity.LocationState)
	watches    int
	removed    int
}

func newFakeLocationProvider(fix entity.LocationState) *fakeLocationProvider {
	return &fakeLocationProvider{foreground: entity.PermissionGranted, fix: &fix}
}

func (f *fakeLocationProvider) RequestForegroundPermission(context.Context) (entity.PermissionStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.foreground, nil
}

func (f *fakeLocationProvider) RequestBackgroundPermission(context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionGranted, nil
}

func (f *fakeLocationProvider) RequestNotificationPermission(context.Context) (entity.PermissionStatus, error) {
	return entity.PermissionDenied, nil
}

func (f *fakeLocationProvider) CurrentFix(context.Context, string) (*entity.LocationState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fixErr != nil {
		return nil, f.fixErr
	}
	fix := *f.fix

	return &fix, nil
}

func (f *fakeLocationProvider) Watch(_ context.Context, _ service.WatchOptions, onUpdate func(entity.LocationState), _ func(error)) (service.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.watches++
	f.onUpdate = onUpdate

	return fakeSubscription{provider: f}, nil
}

// emit delivers a fix the way a platform callback would, ignoring detached streams.
func (f *fakeLocationProvider) emit(fix entity.LocationState) {
	f.mu.Lock()
	onUpdate := f.onUpdate
	f.mu.Unlock()

	if onUpdate != nil {
		onUpdate(fix)
	}
}

// captured returns the live callback so a test can call it even after Remove, like a fix already in flight.
func (f *fakeLocationProvider) captured() func(entity.LocationState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.onUpdate
}

type fakeSubscription struct {
	provider *fakeLocationProvider
}

func (s fakeSubscription) Remove() {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()

	s.provider.onUpdate = nil
	s.provider.removed++
}

// recordingSink keeps every notification shown.
type recordingSink struct {
	mu    sync.Mutex
	shown []*entity.Notification
	err   error
}

func (s *recordingSink) Show(_ context.Context, n *entity.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shown = append(s.shown, n)

	return s.err
}

func (s *recordingSink) titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	titles := make([]string, 0, len(s.shown))
	for _, n := range s.shown {
		titles = append(titles, n.Title)
	}

	return titles
}

type monitorFixture struct {
	monitor   *safeZoneMonitor
	clock     clockwork.FakeClock
	location  *fakeLocationProvider
	sink      *recordingSink
	feed      usecase.ChangeFeed
	zones     repository.SafeZoneRepository
	settings  repository.SettingsRepository
	dashboard repository.DashboardRepository
}

type monitorOption func(*SafeZoneMonitorParams)

func newMonitorFixture(t *testing.T, zones []entity.SafeZone, start entity.Coordinate, opts ...monitorOption) *monitorFixture {
	t.Helper()

	store := kv.NewKeyValueStore(memory.New())
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	fixture := &monitorFixture{
		clock:     clock,
		location:  newFakeLocationProvider(entity.LocationState{Latitude: start.Latitude, Longitude: start.Longitude, Timestamp: clock.Now()}),
		sink:      &recordingSink{},
		feed:      NewChangeFeed(),
		zones:     document.NewSafeZoneRepository(store),
		settings:  document.NewSettingsRepository(store),
		dashboard: document.NewDashboardRepository(store),
	}

	_, err := fixture.zones.Update(context.Background(), func([]entity.SafeZone) ([]entity.SafeZone, error) {
		return zones, nil
	})
	require.NoError(t, err)

	cfg := &config.Config{Monitor: config.DefaultMonitorConfig()}
	params := SafeZoneMonitorParams{
		Config:        cfg,
		Logger:        slog.New(slog.DiscardHandler),
		Clock:         clock,
		Location:      fixture.location,
		Sink:          fixture.sink,
		Feed:          fixture.feed,
		SafeZoneRepo:  fixture.zones,
		SettingsRepo:  fixture.settings,
		DashboardRepo: fixture.dashboard,
	}
	for _, opt := range opts {
		opt(&params)
	}

	fixture.monitor = NewSafeZoneMonitor(params).(*safeZoneMonitor)
	t.Cleanup(func() { _ = fixture.monitor.Dispose(context.Background()) })

	return fixture
}

func homeZone() entity.SafeZone {
	return entity.SafeZone{
		ID:            "home",
		Name:          "Home",
		Latitude:      homeCenter.Latitude,
		Longitude:     homeCenter.Longitude,
		Radius:        100,
		IsActive:      true,
		Notifications: entity.SafeZoneNotifications{OnEntry: true, OnExit: true},
	}
}

// awayFromHome returns the coordinate the given number of meters due north of home.
func awayFromHome(meters float64) entity.Coordinate {
	p := geo.Destination(homeCenter.Point(), 0, meters)

	return entity.Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// northOfHome returns a fix the given number of meters due north of the home center.
func northOfHome(clock clockwork.Clock, meters float64) entity.LocationState {
	c := awayFromHome(meters)

	return entity.LocationState{Latitude: c.Latitude, Longitude: c.Longitude, Timestamp: clock.Now()}
}

func (f *monitorFixture) activity(t *testing.T) []entity.SafeZoneActivity {
	t.Helper()

	dashboard, err := f.dashboard.Get(context.Background())
	require.NoError(t, err)

	return dashboard.SafeZoneActivity
}

func TestSafeZoneMonitor_EntryThenExit(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	assert.Equal(t, map[string]bool{"home": false}, f.monitor.Memberships())
	assert.Empty(t, f.sink.titles(), "initial fix seeds silently")

	f.clock.Advance(time.Minute)
	f.location.emit(northOfHome(f.clock, 50))
	assert.Equal(t, map[string]bool{"home": true}, f.monitor.Memberships())

	f.clock.Advance(time.Minute)
	f.location.emit(northOfHome(f.clock, 500))
	assert.Equal(t, map[string]bool{"home": false}, f.monitor.Memberships())

	assert.Equal(t, []string{"🟢 Safe Zone Entry", "🔴 Safe Zone Exit"}, f.sink.titles())
	assert.Equal(t, "Child has entered Home", f.sink.shown[0].Body)
	assert.Equal(t, "Child has left Home", f.sink.shown[1].Body)
	assert.Equal(t, entity.NotificationPriorityHigh, f.sink.shown[0].Priority)

	activity := f.activity(t)
	require.Len(t, activity, 2)
	assert.Equal(t, entity.SafeZoneEventExit, activity[0].Type, "newest first")
	assert.Equal(t, entity.SafeZoneEventEntry, activity[1].Type)
	assert.Equal(t, "Home", activity[0].SafeZoneName)

	dashboard, err := f.dashboard.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dashboard.LastKnownLocation)
	assert.Equal(t, f.clock.Now(), dashboard.LastKnownLocation.Timestamp)
}

func TestSafeZoneMonitor_BoundaryIsInside(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 99.99))
	assert.True(t, f.monitor.Memberships()["home"])
}

func TestSafeZoneMonitor_BoundaryExactRadius(t *testing.T) {
	fix := awayFromHome(100)
	radius := geo.Distance(homeCenter.Point(), fix.Point())

	edge := homeZone()
	edge.ID = "edge"
	edge.Radius = radius
	short := homeZone()
	short.ID = "short"
	short.Radius = math.Nextafter(radius, 0)

	f := newMonitorFixture(t, []entity.SafeZone{edge, short}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.clock.Advance(time.Minute)
	f.location.emit(entity.LocationState{Latitude: fix.Latitude, Longitude: fix.Longitude, Timestamp: f.clock.Now()})

	assert.Equal(t, map[string]bool{"edge": true, "short": false}, f.monitor.Memberships())
	activity := f.activity(t)
	require.Len(t, activity, 1)
	assert.Equal(t, "edge", activity[0].SafeZoneID)
	assert.Equal(t, entity.SafeZoneEventEntry, activity[0].Type)
}

func TestSafeZoneMonitor_StartLoadsCurrentZones(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	ctx := context.Background()

	require.NoError(t, f.monitor.StartMonitoring(ctx))
	assert.Equal(t, map[string]bool{"home": true}, f.monitor.Memberships())
	f.monitor.StopMonitoring()

	school := homeZone()
	school.ID = "school"
	school.Name = "School"
	school.Latitude += 0.05
	_, err := f.zones.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		return append(zones, school), nil
	})
	require.NoError(t, err)

	require.NoError(t, f.monitor.StartMonitoring(ctx))
	assert.Equal(t, map[string]bool{"home": true, "school": false}, f.monitor.Memberships())

	f.location.emit(northOfHome(f.clock, 500))
	assert.Equal(t, []string{"🔴 Safe Zone Exit"}, f.sink.titles())
}

func TestSafeZoneMonitor_NoEventWithoutCrossing(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	for _, meters := range []float64{10, 40, 80} {
		f.clock.Advance(time.Minute)
		f.location.emit(northOfHome(f.clock, meters))
	}

	assert.Empty(t, f.sink.titles())
	assert.Empty(t, f.activity(t))
}

func TestSafeZoneMonitor_CooldownSuppressesNotificationNotActivity(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 50))
	f.clock.Advance(time.Minute)
	f.location.emit(northOfHome(f.clock, 500))
	f.clock.Advance(time.Minute)
	f.location.emit(northOfHome(f.clock, 50))

	assert.Equal(t, []string{"🟢 Safe Zone Entry", "🔴 Safe Zone Exit"}, f.sink.titles(),
		"second entry within five minutes is not notified")
	assert.Len(t, f.activity(t), 3, "every transition is recorded")

	f.clock.Advance(5 * time.Minute)
	f.location.emit(northOfHome(f.clock, 500))
	f.clock.Advance(5 * time.Minute)
	f.location.emit(northOfHome(f.clock, 50))
	assert.Len(t, f.sink.titles(), 4)
}

func TestSafeZoneMonitor_ZoneNotificationSwitches(t *testing.T) {
	zone := homeZone()
	zone.Notifications.OnEntry = false
	f := newMonitorFixture(t, []entity.SafeZone{zone}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 50))
	f.location.emit(northOfHome(f.clock, 500))

	assert.Equal(t, []string{"🔴 Safe Zone Exit"}, f.sink.titles())
	assert.Len(t, f.activity(t), 2)
}

func TestSafeZoneMonitor_AlertsDisabledStillRecordsActivity(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	_, err := f.settings.Update(context.Background(), func(s *entity.ParentalSettings) error {
		s.SafeZoneAlerts = false
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, f.monitor.reconcile(context.Background()))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 50))

	assert.Empty(t, f.sink.titles())
	assert.Len(t, f.activity(t), 1)
}

func TestSafeZoneMonitor_SinkFailureDoesNotStopRecording(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	f.sink.err = errors.New("push unavailable")
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 50))

	assert.Len(t, f.sink.titles(), 1)
	assert.Len(t, f.activity(t), 1)
	assert.True(t, f.monitor.IsMonitoring())
}

func TestSafeZoneMonitor_ActivityLogCapped(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	for i := range 60 {
		f.clock.Advance(time.Second)
		if i%2 == 0 {
			f.location.emit(northOfHome(f.clock, 10))
		} else {
			f.location.emit(northOfHome(f.clock, 500))
		}
	}

	activity := f.activity(t)
	require.Len(t, activity, 50)
	assert.Equal(t, entity.SafeZoneEventExit, activity[0].Type, "the last transition is kept first")
}

func TestSafeZoneMonitor_InactiveZonesIgnored(t *testing.T) {
	inactive := homeZone()
	inactive.ID = "park"
	inactive.IsActive = false
	f := newMonitorFixture(t, []entity.SafeZone{homeZone(), inactive}, homeCenter)
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	assert.Equal(t, map[string]bool{"home": true}, f.monitor.Memberships())

	status := f.monitor.CurrentSafeZoneStatus()
	require.NotNil(t, status)
	assert.Equal(t, 1, status.TotalActive)
	assert.Len(t, status.Inside, 1)
	assert.Empty(t, status.Outside)
	assert.True(t, status.IsMonitoring)
}

func TestSafeZoneMonitor_StatusNilBeforeFirstFix(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	assert.Nil(t, f.monitor.CurrentSafeZoneStatus())
}

func TestSafeZoneMonitor_TransitionInitialSample(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter, func(p *SafeZoneMonitorParams) {
		p.Config.Monitor.InitialSample = config.InitialSampleTransition
	})
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	assert.Equal(t, []string{"🟢 Safe Zone Entry"}, f.sink.titles())
	assert.Len(t, f.activity(t), 1)
}

func TestSafeZoneMonitor_StartIsIdempotent(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	assert.Equal(t, 1, f.location.watches)
}

func TestSafeZoneMonitor_StopDetachesStream(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	inFlight := f.location.captured()

	f.monitor.StopMonitoring()
	f.monitor.StopMonitoring()

	assert.False(t, f.monitor.IsMonitoring())
	assert.Equal(t, 1, f.location.removed)

	inFlight(northOfHome(f.clock, 10))
	assert.Empty(t, f.sink.titles(), "fixes delivered after stop are dropped")
	assert.False(t, f.monitor.Memberships()["home"])
}

func TestSafeZoneMonitor_PermissionDenied(t *testing.T) {
	alerter := mockSvc.NewMockAlerter(t)
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter, func(p *SafeZoneMonitorParams) {
		p.Alerter = alerter
	})
	f.location.foreground = entity.PermissionDenied
	alerter.EXPECT().
		Alert(mock.Anything, "Location Permission Required", "Safe zone monitoring requires location access to work properly.").
		Return(nil).
		Once()

	err := f.monitor.StartMonitoring(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.False(t, f.monitor.IsMonitoring())
	assert.Zero(t, f.location.watches)
}

func TestSafeZoneMonitor_InitialFixFailure(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	f.location.fixErr = errors.New("gps timeout")

	err := f.monitor.StartMonitoring(context.Background())

	require.Error(t, err)
	assert.False(t, f.monitor.IsMonitoring())
}

func TestSafeZoneMonitor_GeofencingRegisteredAndFailureTolerated(t *testing.T) {
	geofencer := mockSvc.NewMockGeofencer(t)
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter, func(p *SafeZoneMonitorParams) {
		p.Geofencer = geofencer
	})
	geofencer.EXPECT().Available(mock.Anything).Return(true).Once()
	geofencer.EXPECT().
		Start(mock.Anything, []entity.GeofenceRegion{homeZone().Region()}).
		Return(errors.New("region limit reached")).
		Once()

	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	assert.True(t, f.monitor.IsMonitoring())
}

func TestSafeZoneMonitor_GeofencingStoppedWithMonitoring(t *testing.T) {
	geofencer := mockSvc.NewMockGeofencer(t)
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter, func(p *SafeZoneMonitorParams) {
		p.Geofencer = geofencer
	})
	geofencer.EXPECT().Available(mock.Anything).Return(true).Once()
	geofencer.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	geofencer.EXPECT().Stop(mock.Anything).Return(nil).Once()

	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	f.monitor.StopMonitoring()
}

func TestSafeZoneMonitor_GeofenceEvents(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	ctx := context.Background()

	entry := entity.GeofenceTransition{Type: entity.SafeZoneEventEntry, Region: homeZone().Region()}
	require.NoError(t, f.monitor.HandleGeofenceEvent(ctx, entry))
	assert.True(t, f.monitor.Memberships()["home"])

	// The location stream then sees the same crossing: no second event.
	f.location.emit(northOfHome(f.clock, 20))
	require.NoError(t, f.monitor.HandleGeofenceEvent(ctx, entry))

	unknown := entity.GeofenceTransition{Type: entity.SafeZoneEventExit, Region: entity.GeofenceRegion{Identifier: "gone"}}
	require.NoError(t, f.monitor.HandleGeofenceEvent(ctx, unknown))

	assert.Equal(t, []string{"🟢 Safe Zone Entry"}, f.sink.titles())
	assert.Len(t, f.activity(t), 1)

	err := f.monitor.HandleGeofenceEvent(ctx, entity.GeofenceTransition{Type: "dwell", Region: homeZone().Region()})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSafeZoneMonitor_GeofenceExitWithoutMembershipIgnored(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	ctx := context.Background()
	_, err := f.settings.Update(ctx, func(s *entity.ParentalSettings) error {
		s.SafeZoneAlerts = false
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, f.monitor.Initialize(ctx))
	require.False(t, f.monitor.IsMonitoring())

	exit := entity.GeofenceTransition{Type: entity.SafeZoneEventExit, Region: homeZone().Region()}
	require.NoError(t, f.monitor.HandleGeofenceEvent(ctx, exit))

	assert.Empty(t, f.monitor.Memberships())
	assert.Empty(t, f.activity(t))

	entry := entity.GeofenceTransition{Type: entity.SafeZoneEventEntry, Region: homeZone().Region()}
	require.NoError(t, f.monitor.HandleGeofenceEvent(ctx, entry))

	assert.Equal(t, map[string]bool{"home": true}, f.monitor.Memberships())
	assert.Len(t, f.activity(t), 1)
}

func TestSafeZoneMonitor_PublishesEvents(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500), func(p *SafeZoneMonitorParams) {
		p.Publisher = publisher
	})
	publisher.EXPECT().
		PublishSafeZoneEvent(mock.Anything, mock.MatchedBy(func(msg *entity.SafeZoneEventMessage) bool {
			return msg.SafeZoneID == "home" && msg.Type == entity.SafeZoneEventEntry
		})).
		Return(errors.New("broker down")).
		Once()
	require.NoError(t, f.monitor.StartMonitoring(context.Background()))

	f.location.emit(northOfHome(f.clock, 50))

	assert.Len(t, f.activity(t), 1)
}

func TestSafeZoneMonitor_AutoStartAndStopFollowChanges(t *testing.T) {
	f := newMonitorFixture(t, nil, homeCenter)
	ctx := context.Background()

	require.NoError(t, f.monitor.Initialize(ctx))
	assert.False(t, f.monitor.IsMonitoring(), "no zones, no monitoring")

	_, err := f.zones.Update(ctx, func([]entity.SafeZone) ([]entity.SafeZone, error) {
		return []entity.SafeZone{homeZone()}, nil
	})
	require.NoError(t, err)
	f.feed.Publish(ctx)
	assert.True(t, f.monitor.IsMonitoring())
	assert.Empty(t, f.sink.titles(), "starting inside a zone is silent")

	_, err = f.settings.Update(ctx, func(s *entity.ParentalSettings) error {
		s.SafeZoneAlerts = false
		return nil
	})
	require.NoError(t, err)
	f.feed.Publish(ctx)
	assert.False(t, f.monitor.IsMonitoring())

	require.NoError(t, f.monitor.Dispose(ctx))
	_, err = f.settings.Update(ctx, func(s *entity.ParentalSettings) error {
		s.SafeZoneAlerts = true
		return nil
	})
	require.NoError(t, err)
	f.feed.Publish(ctx)
	assert.False(t, f.monitor.IsMonitoring(), "disposed monitor ignores changes")
}

func TestSafeZoneMonitor_ChangeInFlightDuringDispose(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, homeCenter)
	ctx := context.Background()

	// Subscribed first, so it runs before the monitor's own callback of the same publish.
	f.feed.Subscribe(func(ctx context.Context) {
		_ = f.monitor.Dispose(ctx)
	})
	require.NoError(t, f.monitor.Initialize(ctx))
	require.True(t, f.monitor.IsMonitoring())

	f.feed.Publish(ctx)

	assert.False(t, f.monitor.IsMonitoring())
	assert.Equal(t, 1, f.location.watches)
	assert.Equal(t, 1, f.location.removed)

	require.NoError(t, f.monitor.StartMonitoring(ctx))
	assert.False(t, f.monitor.IsMonitoring(), "a disposed monitor stays stopped")

	require.NoError(t, f.monitor.Initialize(ctx))
	assert.True(t, f.monitor.IsMonitoring(), "initializing again resumes")
	assert.Equal(t, 2, f.location.watches)
}

func TestSafeZoneMonitor_ZoneDeletedWhileInside(t *testing.T) {
	school := homeZone()
	school.ID = "school"
	school.Name = "School"
	f := newMonitorFixture(t, []entity.SafeZone{homeZone(), school}, homeCenter)
	ctx := context.Background()
	require.NoError(t, f.monitor.Initialize(ctx))
	require.True(t, f.monitor.IsMonitoring())

	_, err := f.zones.Update(ctx, func(zones []entity.SafeZone) ([]entity.SafeZone, error) {
		return zones[1:], nil
	})
	require.NoError(t, err)
	f.feed.Publish(ctx)

	assert.Equal(t, map[string]bool{"school": true}, f.monitor.Memberships())
	f.location.emit(northOfHome(f.clock, 500))
	assert.Equal(t, []string{"🔴 Safe Zone Exit"}, f.sink.titles(), "no exit is reported for the deleted zone")
	assert.Equal(t, "Child has left School", f.sink.shown[0].Body)
}

func TestSafeZoneMonitor_ListenersSeeEachChangeInOrder(t *testing.T) {
	f := newMonitorFixture(t, []entity.SafeZone{homeZone()}, awayFromHome(500))

	var (
		mu       sync.Mutex
		statuses []*entity.SafeZoneStatus
	)
	unsubscribe := f.monitor.Subscribe(func(status *entity.SafeZoneStatus) {
		mu.Lock()
		defer mu.Unlock()
		statuses = append(statuses, status)
	})

	require.NoError(t, f.monitor.StartMonitoring(context.Background()))
	f.location.emit(northOfHome(f.clock, 50))
	unsubscribe()
	unsubscribe()
	f.location.emit(northOfHome(f.clock, 500))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, statuses, 2)
	assert.Empty(t, statuses[0].Inside)
	assert.Len(t, statuses[1].Inside, 1)
}
