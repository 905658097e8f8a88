package impl

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/geo"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/usecase"
)

const (
	permissionAlertTitle   = "Location Permission Required"
	permissionAlertMessage = "Safe zone monitoring requires location access to work properly."
)

// SafeZoneMonitorParams holds dependencies for the monitor, injected by Fx
type SafeZoneMonitorParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Clock     clockwork.Clock
	Location  service.LocationProvider
	Sink      service.NotificationSink
	Geofencer service.Geofencer      `optional:"true"`
	Alerter   service.Alerter        `optional:"true"`
	Publisher service.EventPublisher `optional:"true"`
	Feed      usecase.ChangeFeed

	SafeZoneRepo  repository.SafeZoneRepository
	SettingsRepo  repository.SettingsRepository
	DashboardRepo repository.DashboardRepository
}

// safeZoneMonitor tracks zone membership of the child device.
//
// Lock order is lifecycleMu, then sampleMu, then notifyMu, then mu. sampleMu is held
// for a whole sample, including dispatch and persistence, so samples never interleave.
// mu only guards the fields below it and is never held across I/O.
type safeZoneMonitor struct {
	cfg       *config.MonitorConfig
	logger    *slog.Logger
	clock     clockwork.Clock
	location  service.LocationProvider
	sink      service.NotificationSink
	geofencer service.Geofencer
	alerter   service.Alerter
	publisher service.EventPublisher
	feed      usecase.ChangeFeed

	safeZoneRepo  repository.SafeZoneRepository
	settingsRepo  repository.SettingsRepository
	dashboardRepo repository.DashboardRepository

	ledger *notificationLedger

	lifecycleMu     sync.Mutex
	sampleMu        sync.Mutex
	notifyMu        sync.Mutex
	unsubscribeFeed func()
	disposed        bool

	listenersMu sync.Mutex
	listeners   map[uint64]usecase.StatusListener
	listenerIDs []uint64
	nextID      uint64

	mu                sync.Mutex
	runCtx            context.Context
	zones             []entity.SafeZone
	settings          entity.ParentalSettings
	memberships       map[string]bool
	current           *entity.LocationState
	monitoring        bool
	geofencingStarted bool
	subscription      service.Subscription
	generation        uint64
}

// NewSafeZoneMonitor creates the monitor. It does nothing until Initialize or StartMonitoring.
func NewSafeZoneMonitor(params SafeZoneMonitorParams) usecase.SafeZoneMonitorUsecase {
	cfg := config.DefaultMonitorConfig()
	if params.Config != nil && params.Config.Monitor != nil {
		cfg = params.Config.Monitor
	}

	return &safeZoneMonitor{
		cfg:           cfg,
		logger:        params.Logger,
		clock:         params.Clock,
		location:      params.Location,
		sink:          params.Sink,
		geofencer:     params.Geofencer,
		alerter:       params.Alerter,
		publisher:     params.Publisher,
		feed:          params.Feed,
		safeZoneRepo:  params.SafeZoneRepo,
		settingsRepo:  params.SettingsRepo,
		dashboardRepo: params.DashboardRepo,
		ledger:        newNotificationLedger(cfg.NotificationCooldown),
		listeners:     make(map[uint64]usecase.StatusListener),
		runCtx:        context.Background(),
		settings:      entity.DefaultParentalSettings(),
		memberships:   make(map[string]bool),
	}
}

// Initialize loads zones and settings, follows their changes and applies the auto-start rule.
func (m *safeZoneMonitor) Initialize(ctx context.Context) error {
	m.lifecycleMu.Lock()
	m.disposed = false
	if m.unsubscribeFeed == nil && m.feed != nil {
		m.unsubscribeFeed = m.feed.Subscribe(func(ctx context.Context) {
			if err := m.reconcile(ctx); err != nil {
				m.logger.Error("Failed to apply safe zone changes", slog.Any("error", err))
			}
		})
	}
	m.lifecycleMu.Unlock()

	return m.reconcile(ctx)
}

// Dispose stops following changes and force-stops monitoring regardless of settings.
// Change callbacks already in flight find the monitor disposed and do nothing.
func (m *safeZoneMonitor) Dispose(_ context.Context) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	m.disposed = true
	if m.unsubscribeFeed != nil {
		m.unsubscribeFeed()
		m.unsubscribeFeed = nil
	}
	m.stopLocked()

	return nil
}

// StartMonitoring loads the current zones and settings and attaches the location stream.
// A disposed monitor stays stopped until Initialize is called again.
func (m *safeZoneMonitor) StartMonitoring(ctx context.Context) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.disposed {
		m.logger.Debug("Ignoring start of a disposed safe zone monitor")

		return nil
	}
	if m.IsMonitoring() {
		return nil
	}

	if _, _, err := m.loadLocked(ctx); err != nil {
		return err
	}

	return m.startLocked(ctx)
}

func (m *safeZoneMonitor) StopMonitoring() {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	m.stopLocked()
}

func (m *safeZoneMonitor) IsMonitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.monitoring
}

func (m *safeZoneMonitor) CurrentSafeZoneStatus() *entity.SafeZoneStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.statusLocked()
}

func (m *safeZoneMonitor) Memberships() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.memberships)
}

// Subscribe registers listener. Listeners run in registration order after each change
// and must not call back into the monitor's lifecycle methods.
func (m *safeZoneMonitor) Subscribe(listener usecase.StatusListener) func() {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = listener
	m.listenerIDs = append(m.listenerIDs, id)

	var once sync.Once

	return func() {
		once.Do(func() {
			m.listenersMu.Lock()
			defer m.listenersMu.Unlock()

			delete(m.listeners, id)
			for i, existing := range m.listenerIDs {
				if existing == id {
					m.listenerIDs = append(m.listenerIDs[:i], m.listenerIDs[i+1:]...)
					break
				}
			}
		})
	}
}

// HandleGeofenceEvent applies a region crossing reported by the device OS. A crossing
// that matches the membership already known from the location stream is a duplicate
// and produces no event.
func (m *safeZoneMonitor) HandleGeofenceEvent(ctx context.Context, transition entity.GeofenceTransition) error {
	if transition.Type != entity.SafeZoneEventEntry && transition.Type != entity.SafeZoneEventExit {
		return domainerrors.ErrValidationFailed.WithDetails("unknown geofence event type " + string(transition.Type))
	}

	m.sampleMu.Lock()

	m.mu.Lock()
	zone, found := findActiveZone(m.zones, transition.Region.Identifier)
	if !found {
		m.mu.Unlock()
		m.sampleMu.Unlock()
		m.logger.Warn("Geofence event for unknown safe zone",
			slog.String("regionId", transition.Region.Identifier),
			slog.String("eventType", string(transition.Type)),
		)

		return nil
	}

	inside := transition.Type == entity.SafeZoneEventEntry
	was, known := m.memberships[zone.ID]
	if !known && !inside {
		m.mu.Unlock()
		m.sampleMu.Unlock()
		m.logger.Debug("Geofence exit before any membership is known",
			slog.String("safeZoneId", zone.ID),
		)

		return nil
	}
	if known && was == inside {
		m.mu.Unlock()
		m.sampleMu.Unlock()
		m.logger.Debug("Geofence event already reflected in membership",
			slog.String("safeZoneId", zone.ID),
			slog.String("eventType", string(transition.Type)),
		)

		return nil
	}
	m.memberships[zone.ID] = inside
	alertsEnabled := m.settings.SafeZoneAlerts
	m.mu.Unlock()

	timestamp := transition.Timestamp
	if timestamp.IsZero() {
		timestamp = m.clock.Now()
	}

	m.logger.Info("Geofence transition",
		slog.String("safeZoneId", zone.ID),
		slog.String("eventType", string(transition.Type)),
	)
	m.handleEvent(ctx, entity.SafeZoneEvent{
		SafeZone:  zone,
		Type:      transition.Type,
		Timestamp: timestamp,
		Location:  entity.Coordinate{Latitude: transition.Region.Latitude, Longitude: transition.Region.Longitude},
	}, alertsEnabled)

	m.notifyMu.Lock()
	m.sampleMu.Unlock()
	m.broadcastLocked()
	m.notifyMu.Unlock()

	return nil
}

// startLocked attaches the stream using the zones and settings already loaded. The
// caller holds lifecycleMu.
func (m *safeZoneMonitor) startLocked(ctx context.Context) error {
	m.mu.Lock()
	if m.monitoring {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	runCtx := context.WithoutCancel(ctx)

	status, err := m.location.RequestForegroundPermission(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to request foreground location permission")
	}
	if status != entity.PermissionGranted {
		m.logger.Warn("Foreground location permission not granted", slog.String("status", string(status)))
		if m.alerter != nil {
			if err := m.alerter.Alert(runCtx, permissionAlertTitle, permissionAlertMessage); err != nil {
				m.logger.Warn("Failed to show permission alert", slog.Any("error", err))
			}
		}

		return domainerrors.ErrPermissionDenied
	}

	if status, err := m.location.RequestBackgroundPermission(ctx); err != nil || status != entity.PermissionGranted {
		m.logger.Warn("Background location permission not granted, monitoring will be limited",
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}
	if status, err := m.location.RequestNotificationPermission(ctx); err != nil || status != entity.PermissionGranted {
		m.logger.Warn("Notification permission not granted",
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}

	fix, err := m.location.CurrentFix(ctx, m.cfg.Accuracy)
	if err != nil {
		return errors.Wrap(err, "failed to get initial location")
	}

	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.runCtx = runCtx
	if m.cfg.InitialSample == config.InitialSampleTransition {
		m.memberships = make(map[string]bool)
	}
	m.mu.Unlock()

	m.sampleMu.Lock()
	m.processSample(runCtx, *fix, m.cfg.InitialSample != config.InitialSampleTransition)
	m.sampleMu.Unlock()

	m.startGeofencing(runCtx)

	subscription, err := m.location.Watch(runCtx, service.WatchOptions{
		Accuracy:    m.cfg.Accuracy,
		MinInterval: m.cfg.WatchInterval,
		MinDistance: m.cfg.WatchDistance,
	}, func(fix entity.LocationState) {
		m.onFix(generation, fix)
	}, func(err error) {
		m.logger.Error("Location watch error", slog.Any("error", err))
	})
	if err != nil {
		m.mu.Lock()
		m.generation++
		m.geofencingStarted = false
		m.mu.Unlock()

		return errors.Wrap(err, "failed to watch location")
	}

	m.mu.Lock()
	m.subscription = subscription
	m.monitoring = true
	activeCount := len(entity.ActiveSafeZones(m.zones))
	m.mu.Unlock()

	m.logger.Info("Safe zone monitoring started", slog.Int("activeZonesCount", activeCount))
	m.broadcast()

	return nil
}

func (m *safeZoneMonitor) stopLocked() {
	m.mu.Lock()
	wasMonitoring := m.monitoring
	wasGeofencing := m.geofencingStarted
	subscription := m.subscription
	ctx := m.runCtx
	m.generation++
	m.subscription = nil
	m.monitoring = false
	m.geofencingStarted = false
	m.mu.Unlock()

	if subscription != nil {
		subscription.Remove()
	}

	// Wait out a sample that passed the generation check before the bump.
	m.sampleMu.Lock()
	m.sampleMu.Unlock() //nolint:staticcheck

	if wasGeofencing && m.geofencer != nil {
		if err := m.geofencer.Stop(ctx); err != nil {
			m.logger.Warn("Failed to stop geofencing", slog.Any("error", err))
		}
	}

	if wasMonitoring {
		m.logger.Info("Safe zone monitoring stopped")
		m.broadcast()
	}
}

// reconcile reloads zones and settings, silently recomputes membership from the last
// fix and starts or stops monitoring to match the settings.
func (m *safeZoneMonitor) reconcile(ctx context.Context) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.disposed {
		return nil
	}

	zones, settings, err := m.loadLocked(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	active := entity.ActiveSafeZones(zones)
	monitoring := m.monitoring
	geofencing := m.geofencingStarted
	m.mu.Unlock()

	shouldMonitor := settings.SafeZoneAlerts && len(zones) > 0

	switch {
	case shouldMonitor && !monitoring:
		if err := m.startLocked(ctx); err != nil {
			m.logger.Warn("Failed to auto-start safe zone monitoring", slog.Any("error", err))
		}

		return nil
	case !shouldMonitor && monitoring:
		m.stopLocked()

		return nil
	case monitoring && geofencing:
		m.refreshGeofences(context.WithoutCancel(ctx), active)
	}

	m.broadcast()

	return nil
}

// loadLocked reads zones and settings and silently recomputes membership of the active
// zones from the last fix. Removed and inactive zones leave the membership map. The
// caller holds lifecycleMu.
func (m *safeZoneMonitor) loadLocked(ctx context.Context) ([]entity.SafeZone, *entity.ParentalSettings, error) {
	zones, err := m.safeZoneRepo.List(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load safe zones")
	}
	settings, err := m.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load parental settings")
	}

	m.sampleMu.Lock()
	m.mu.Lock()
	m.zones = zones
	m.settings = *settings
	active := entity.ActiveSafeZones(zones)
	memberships := make(map[string]bool, len(active))
	for _, zone := range active {
		if m.current != nil {
			memberships[zone.ID] = geo.Contains(zone.Center(), zone.Radius, m.current.Point())
		} else if inside, ok := m.memberships[zone.ID]; ok {
			memberships[zone.ID] = inside
		}
	}
	m.memberships = memberships
	m.mu.Unlock()
	m.sampleMu.Unlock()

	return zones, settings, nil
}

func (m *safeZoneMonitor) onFix(generation uint64, fix entity.LocationState) {
	m.sampleMu.Lock()

	m.mu.Lock()
	stale := generation != m.generation
	ctx := m.runCtx
	m.mu.Unlock()

	if stale {
		m.sampleMu.Unlock()
		return
	}

	m.processSample(ctx, fix, false)

	m.notifyMu.Lock()
	m.sampleMu.Unlock()
	m.broadcastLocked()
	m.notifyMu.Unlock()
}

// processSample runs one membership diff. The caller holds sampleMu.
func (m *safeZoneMonitor) processSample(ctx context.Context, fix entity.LocationState, silent bool) {
	if fix.Timestamp.IsZero() {
		fix.Timestamp = m.clock.Now()
	}

	m.mu.Lock()
	active := entity.ActiveSafeZones(m.zones)
	previous := m.memberships
	next := make(map[string]bool, len(active))
	var events []entity.SafeZoneEvent

	for _, zone := range active {
		inside := geo.Contains(zone.Center(), zone.Radius, fix.Point())
		next[zone.ID] = inside

		if silent {
			continue
		}

		wasInside := previous[zone.ID]
		switch {
		case inside && !wasInside:
			events = append(events, newSafeZoneEvent(zone, entity.SafeZoneEventEntry, fix))
		case !inside && wasInside:
			events = append(events, newSafeZoneEvent(zone, entity.SafeZoneEventExit, fix))
		}
	}

	m.memberships = next
	current := fix
	m.current = &current
	alertsEnabled := m.settings.SafeZoneAlerts
	m.mu.Unlock()

	for _, event := range events {
		m.handleEvent(ctx, event, alertsEnabled)
	}

	m.recordLastKnownLocation(ctx, fix)
}

// handleEvent dispatches the notification, then appends the activity record whatever
// the dispatch outcome.
func (m *safeZoneMonitor) handleEvent(ctx context.Context, event entity.SafeZoneEvent, alertsEnabled bool) {
	m.dispatch(ctx, event, alertsEnabled)
	m.appendActivity(ctx, event)
	m.publish(ctx, event)
}

func (m *safeZoneMonitor) dispatch(ctx context.Context, event entity.SafeZoneEvent, alertsEnabled bool) {
	if !alertsEnabled || !event.SafeZone.NotifiesOn(event.Type) {
		return
	}

	now := m.clock.Now()
	if !m.ledger.allow(ledgerKey(event.SafeZone.ID, event.Type), now) {
		m.logger.Debug("Safe zone notification suppressed by cooldown",
			slog.String("safeZoneId", event.SafeZone.ID),
			slog.String("eventType", string(event.Type)),
		)

		return
	}

	if err := m.sink.Show(ctx, entity.NewSafeZoneNotification(event.SafeZone.ID, event.SafeZone.Name, event.Type, now)); err != nil {
		m.logger.Warn("Failed to send safe zone notification",
			slog.String("safeZoneId", event.SafeZone.ID),
			slog.Any("error", err),
		)
	}
}

func (m *safeZoneMonitor) appendActivity(ctx context.Context, event entity.SafeZoneEvent) {
	activity := entity.SafeZoneActivity{
		ID:           "activity_" + uuid.NewString(),
		SafeZoneID:   event.SafeZone.ID,
		SafeZoneName: event.SafeZone.Name,
		Type:         event.Type,
		Timestamp:    m.clock.Now(),
	}

	_, err := m.dashboardRepo.Update(ctx, func(dashboard *entity.DashboardData) error {
		dashboard.PrependActivity(activity, m.cfg.ActivityLogLimit)
		return nil
	})
	if err != nil {
		m.logger.Error("Failed to record safe zone activity",
			slog.String("safeZoneId", event.SafeZone.ID),
			slog.Any("error", err),
		)
	}
}

func (m *safeZoneMonitor) recordLastKnownLocation(ctx context.Context, fix entity.LocationState) {
	_, err := m.dashboardRepo.Update(ctx, func(dashboard *entity.DashboardData) error {
		dashboard.LastKnownLocation = &entity.LastKnownLocation{
			Latitude:  fix.Latitude,
			Longitude: fix.Longitude,
			Timestamp: fix.Timestamp,
		}
		return nil
	})
	if err != nil {
		m.logger.Warn("Failed to record last known location", slog.Any("error", err))
	}
}

func (m *safeZoneMonitor) publish(ctx context.Context, event entity.SafeZoneEvent) {
	if m.publisher == nil {
		return
	}

	err := m.publisher.PublishSafeZoneEvent(ctx, &entity.SafeZoneEventMessage{
		SafeZoneID:   event.SafeZone.ID,
		SafeZoneName: event.SafeZone.Name,
		Type:         event.Type,
		Latitude:     event.Location.Latitude,
		Longitude:    event.Location.Longitude,
		Timestamp:    event.Timestamp,
	})
	if err != nil {
		m.logger.Warn("Failed to publish safe zone event", slog.Any("error", err))
	}
}

// startGeofencing registers OS regions once per start. Failures only disable the
// background wake-up; foreground monitoring continues.
func (m *safeZoneMonitor) startGeofencing(ctx context.Context) {
	if !m.cfg.GeofencingEnabled || m.geofencer == nil {
		return
	}

	m.mu.Lock()
	started := m.geofencingStarted
	active := entity.ActiveSafeZones(m.zones)
	m.mu.Unlock()

	if started || len(active) == 0 || !m.geofencer.Available(ctx) {
		return
	}

	regions := regionsOf(active)
	if err := m.geofencer.Start(ctx, regions); err != nil {
		m.logger.Error("Failed to start geofencing", slog.Int("regionCount", len(regions)), slog.Any("error", err))
		return
	}

	m.mu.Lock()
	m.geofencingStarted = true
	m.mu.Unlock()

	m.logger.Info("Geofencing initialized for safe zones", slog.Int("regionCount", len(regions)))
}

func (m *safeZoneMonitor) refreshGeofences(ctx context.Context, active []entity.SafeZone) {
	var err error
	if len(active) == 0 {
		err = m.geofencer.Stop(ctx)
	} else {
		err = m.geofencer.Start(ctx, regionsOf(active))
	}
	if err != nil {
		m.logger.Warn("Failed to refresh geofences", slog.Any("error", err))
	}
}

func (m *safeZoneMonitor) broadcast() {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.broadcastLocked()
}

// broadcastLocked delivers the current status. The caller holds notifyMu.
func (m *safeZoneMonitor) broadcastLocked() {
	status := m.CurrentSafeZoneStatus()

	m.listenersMu.Lock()
	listeners := make([]usecase.StatusListener, 0, len(m.listenerIDs))
	for _, id := range m.listenerIDs {
		listeners = append(listeners, m.listeners[id])
	}
	m.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(status)
	}
}

func (m *safeZoneMonitor) statusLocked() *entity.SafeZoneStatus {
	if m.current == nil {
		return nil
	}

	active := entity.ActiveSafeZones(m.zones)
	status := &entity.SafeZoneStatus{
		TotalActive:     len(active),
		Inside:          []entity.SafeZone{},
		Outside:         []entity.SafeZone{},
		CurrentLocation: *m.current,
		IsMonitoring:    m.monitoring,
	}
	for _, zone := range active {
		if m.memberships[zone.ID] {
			status.Inside = append(status.Inside, zone)
		} else {
			status.Outside = append(status.Outside, zone)
		}
	}

	return status
}

func newSafeZoneEvent(zone entity.SafeZone, eventType entity.SafeZoneEventType, fix entity.LocationState) entity.SafeZoneEvent {
	return entity.SafeZoneEvent{
		SafeZone:  zone,
		Type:      eventType,
		Timestamp: fix.Timestamp,
		Location:  fix.Coordinate(),
	}
}

func findActiveZone(zones []entity.SafeZone, id string) (entity.SafeZone, bool) {
	for _, zone := range zones {
		if zone.ID == id && zone.IsActive {
			return zone, true
		}
	}

	return entity.SafeZone{}, false
}

func regionsOf(zones []entity.SafeZone) []entity.GeofenceRegion {
	regions := make([]entity.GeofenceRegion, 0, len(zones))
	for _, zone := range zones {
		regions = append(regions, zone.Region())
	}

	return regions
}
