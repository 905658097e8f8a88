package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/geo"
	"guardian/internal/domain/service"
)

type published struct {
	topic    string
	retained bool
	payload  []byte
}

// loopback delivers every publish synchronously to the handlers of the same topic.
type loopback struct {
	mu        sync.Mutex
	handlers  map[string]MessageHandler
	messages  []published
	connected bool
}

func newLoopback() *loopback {
	return &loopback{handlers: make(map[string]MessageHandler), connected: true}
}

func (l *loopback) Publish(_ context.Context, topic string, retained bool, payload []byte) error {
	l.mu.Lock()
	l.messages = append(l.messages, published{topic: topic, retained: retained, payload: payload})
	handler := l.handlers[topic]
	l.mu.Unlock()

	if handler != nil {
		handler(topic, payload)
	}

	return nil
}

func (l *loopback) Subscribe(topic string, handler MessageHandler) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[topic] = handler

	return nil
}

func (l *loopback) Unsubscribe(topic string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.handlers, topic)

	return nil
}

func (l *loopback) IsConnected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.connected
}

func (l *loopback) on(topic string) []published {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []published
	for _, m := range l.messages {
		if m.topic == topic {
			out = append(out, m)
		}
	}

	return out
}

// device answers requests the way the paired phone app does.
func (l *loopback) device(t *testing.T, request, reply string, answer func(payload []byte) any) {
	t.Helper()

	require.NoError(t, l.Subscribe(request, func(_ string, payload []byte) {
		data, err := json.Marshal(answer(payload))
		require.NoError(t, err)
		require.NoError(t, l.Publish(context.Background(), reply, false, data))
	}))
}

func (l *loopback) sendFix(t *testing.T, topics Topics, fix entity.LocationState) {
	t.Helper()

	data, err := json.Marshal(fix)
	require.NoError(t, err)
	require.NoError(t, l.Publish(context.Background(), topics.Location(), false, data))
}

var testTopics = NewTopics("guardian", "phone-1")

func newProviderForTest(t *testing.T, transport Transport, timeout time.Duration) (*LocationProvider, clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	provider, err := NewLocationProvider(transport, testTopics, timeout, clock, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return provider, clock
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "guardian/devices/phone-1/location", testTopics.Location())
	assert.Equal(t, "guardian/devices/phone-1/geofences", testTopics.Geofences())
	assert.Equal(t, "guardian/devices/phone-1/pings/ack", testTopics.PingAcks())
	assert.Equal(t, "guardian/devices/phone-1/check-ins/complete", testTopics.CheckInReplies())
}

func TestLocationProvider_Permissions(t *testing.T) {
	transport := newLoopback()
	provider, _ := newProviderForTest(t, transport, time.Second)
	transport.device(t, testTopics.PermissionRequest(), testTopics.PermissionReply(), func(payload []byte) any {
		var req PermissionRequest
		require.NoError(t, json.Unmarshal(payload, &req))
		status := entity.PermissionGranted
		switch req.Kind {
		case PermissionBackground:
			status = entity.PermissionDenied
		case PermissionNotification:
			status = "maybe"
		}

		return PermissionReply{RequestID: req.RequestID, Kind: req.Kind, Status: status}
	})
	ctx := context.Background()

	status, err := provider.RequestForegroundPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, status)

	status, err = provider.RequestBackgroundPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, status)

	status, err = provider.RequestNotificationPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionUndetermined, status)
}

func TestLocationProvider_CurrentFix(t *testing.T) {
	transport := newLoopback()
	provider, clock := newProviderForTest(t, transport, time.Second)
	transport.device(t, testTopics.LocationRequest(), testTopics.LocationReply(), func(payload []byte) any {
		var req FixRequest
		require.NoError(t, json.Unmarshal(payload, &req))
		assert.Equal(t, "balanced", req.Accuracy)

		return FixReply{RequestID: req.RequestID, Latitude: 40.7128, Longitude: -74.006}
	})

	fix, err := provider.CurrentFix(context.Background(), "balanced")

	require.NoError(t, err)
	assert.Equal(t, 40.7128, fix.Latitude)
	assert.Equal(t, -74.006, fix.Longitude)
	assert.Equal(t, clock.Now(), fix.Timestamp, "missing timestamp is stamped on receipt")
}

func TestLocationProvider_CurrentFixDeviceError(t *testing.T) {
	transport := newLoopback()
	provider, _ := newProviderForTest(t, transport, time.Second)
	transport.device(t, testTopics.LocationRequest(), testTopics.LocationReply(), func(payload []byte) any {
		var req FixRequest
		require.NoError(t, json.Unmarshal(payload, &req))

		return FixReply{RequestID: req.RequestID, Error: "gps off"}
	})

	_, err := provider.CurrentFix(context.Background(), "high")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gps off")
}

func TestLocationProvider_RequestTimeout(t *testing.T) {
	provider, _ := newProviderForTest(t, newLoopback(), 10*time.Millisecond)

	_, err := provider.CurrentFix(context.Background(), "balanced")

	require.ErrorIs(t, err, ErrRequestTimeout)
}

func TestLocationProvider_LateReplyIsDropped(t *testing.T) {
	transport := newLoopback()
	provider, _ := newProviderForTest(t, transport, time.Second)

	data, err := json.Marshal(FixReply{RequestID: "unknown", Latitude: 1})
	require.NoError(t, err)
	require.NoError(t, transport.Publish(context.Background(), testTopics.LocationReply(), false, data))
	require.NoError(t, transport.Publish(context.Background(), testTopics.LocationReply(), false, []byte("garbage")))

	assert.Empty(t, provider.requests.pending)
}

func TestLocationProvider_WatchLifecycle(t *testing.T) {
	transport := newLoopback()
	provider, clock := newProviderForTest(t, transport, time.Second)
	opts := service.WatchOptions{Accuracy: "balanced", MinInterval: 30 * time.Second, MinDistance: 50}

	var fixes []entity.LocationState
	var streamErrs []error
	sub, err := provider.Watch(context.Background(), opts, func(fix entity.LocationState) {
		fixes = append(fixes, fix)
	}, func(err error) {
		streamErrs = append(streamErrs, err)
	})
	require.NoError(t, err)

	commands := transport.on(testTopics.LocationWatch())
	require.Len(t, commands, 1)
	assert.True(t, commands[0].retained)
	var cmd WatchCommand
	require.NoError(t, json.Unmarshal(commands[0].payload, &cmd))
	assert.Equal(t, WatchCommand{Active: true, Accuracy: "balanced", MinIntervalMs: 30000, MinDistance: 50}, cmd)

	home := orbFix(clock.Now(), 40.7128, -74.006)
	transport.sendFix(t, testTopics, home)

	// Too soon and too close.
	clock.Advance(5 * time.Second)
	near := moved(home, clock.Now(), 10)
	transport.sendFix(t, testTopics, near)

	// Far enough.
	clock.Advance(time.Second)
	far := moved(home, clock.Now(), 120)
	transport.sendFix(t, testTopics, far)

	// Long enough.
	clock.Advance(31 * time.Second)
	later := far
	later.Timestamp = clock.Now()
	transport.sendFix(t, testTopics, later)

	require.NoError(t, transport.Publish(context.Background(), testTopics.Location(), false, []byte("{bad")))

	require.Len(t, fixes, 3)
	assert.Equal(t, home, fixes[0])
	assert.Equal(t, far, fixes[1])
	assert.Equal(t, later, fixes[2])
	require.Len(t, streamErrs, 1)

	sub.Remove()
	sub.Remove()
	transport.sendFix(t, testTopics, moved(home, clock.Now().Add(time.Hour), 500))
	assert.Len(t, fixes, 3, "nothing is delivered after Remove")

	commands = transport.on(testTopics.LocationWatch())
	require.Len(t, commands, 2)
	require.NoError(t, json.Unmarshal(commands[1].payload, &cmd))
	assert.False(t, cmd.Active)
}

func TestLocationProvider_StreamStaysOnWhileWatched(t *testing.T) {
	transport := newLoopback()
	provider, _ := newProviderForTest(t, transport, time.Second)
	noop := func(entity.LocationState) {}

	first, err := provider.Watch(context.Background(), service.WatchOptions{}, noop, nil)
	require.NoError(t, err)
	second, err := provider.Watch(context.Background(), service.WatchOptions{}, noop, nil)
	require.NoError(t, err)

	first.Remove()
	assert.Len(t, transport.on(testTopics.LocationWatch()), 1, "second watcher keeps the stream on")

	second.Remove()
	assert.Len(t, transport.on(testTopics.LocationWatch()), 2)
}

func TestLocationProvider_RemoveWaitsForRunningCallback(t *testing.T) {
	transport := newLoopback()
	provider, clock := newProviderForTest(t, transport, time.Second)

	entered := make(chan struct{})
	release := make(chan struct{})
	sub, err := provider.Watch(context.Background(), service.WatchOptions{}, func(entity.LocationState) {
		close(entered)
		<-release
	}, nil)
	require.NoError(t, err)

	go transport.sendFix(t, testTopics, orbFix(clock.Now(), 1, 1))
	<-entered

	removed := make(chan struct{})
	go func() {
		sub.Remove()
		close(removed)
	}()

	select {
	case <-removed:
		t.Fatal("Remove returned while a callback was running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	require.Eventually(t, func() bool {
		select {
		case <-removed:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestGeofencer(t *testing.T) {
	transport := newLoopback()
	geofencer := NewGeofencer(transport, testTopics)
	ctx := context.Background()

	assert.True(t, geofencer.Available(ctx))

	region := entity.GeofenceRegion{Identifier: "safe_zone_1", Latitude: 1, Longitude: 2, Radius: 100}
	require.NoError(t, geofencer.Start(ctx, []entity.GeofenceRegion{region}))
	require.NoError(t, geofencer.Stop(ctx))

	messages := transport.on(testTopics.Geofences())
	require.Len(t, messages, 2)
	for _, m := range messages {
		assert.True(t, m.retained)
	}
	assert.JSONEq(t, `{"regions":[{"identifier":"safe_zone_1","latitude":1,"longitude":2,"radius":100}]}`, string(messages[0].payload))
	assert.JSONEq(t, `{"regions":[]}`, string(messages[1].payload))

	transport.connected = false
	assert.False(t, geofencer.Available(ctx))
}

func TestMessenger(t *testing.T) {
	transport := newLoopback()
	messenger := NewMessenger(transport, testTopics)
	ctx := context.Background()

	require.NoError(t, messenger.Alert(ctx, "Location Permission Required", "Please allow location access"))
	require.NoError(t, messenger.SendPing(ctx, &entity.DevicePingRequest{ID: "ping_1", Type: entity.DevicePingRing}))
	require.NoError(t, messenger.SendCheckInRequest(ctx, &entity.CheckInRequest{ID: "check_in_1", Message: "Where are you?"}))

	require.Len(t, transport.on(testTopics.Alerts()), 1)
	pings := transport.on(testTopics.Pings())
	require.Len(t, pings, 1)
	var ping entity.DevicePingRequest
	require.NoError(t, json.Unmarshal(pings[0].payload, &ping))
	assert.Equal(t, "ping_1", ping.ID)
	require.Len(t, transport.on(testTopics.CheckIns()), 1)

	transport.connected = false
	require.Error(t, messenger.SendPing(ctx, &ping))
}

func orbFix(at time.Time, lat, lng float64) entity.LocationState {
	return entity.LocationState{Latitude: lat, Longitude: lng, Timestamp: at}
}

func moved(from entity.LocationState, at time.Time, meters float64) entity.LocationState {
	p := geo.Destination(from.Point(), 0, meters)

	return entity.LocationState{Latitude: p[1], Longitude: p[0], Timestamp: at}
}
