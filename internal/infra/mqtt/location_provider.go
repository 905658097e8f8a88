package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/geo"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

// LocationProvider reads the child device location over MQTT. Permission prompts and
// one-shot fixes are request/reply exchanges; the continuous stream is a retained
// watch command answered by fixes on the location topic.
type LocationProvider struct {
	transport Transport
	topics    Topics
	requests  *requester
	clock     clockwork.Clock
	logger    *slog.Logger

	mu       sync.Mutex
	watchers map[uint64]*watcher
	nextID   uint64
}

type watcher struct {
	id       uint64
	provider *LocationProvider
	opts     service.WatchOptions
	onUpdate func(entity.LocationState)
	onError  func(error)

	// mu is held while a callback runs so Remove waits for it.
	mu        sync.Mutex
	removed   bool
	last      *entity.LocationState
	removeOne sync.Once
}

// NewLocationProvider subscribes to the device location and reply topics.
func NewLocationProvider(transport Transport, topics Topics, requestTimeout time.Duration, clock clockwork.Clock, logger *slog.Logger) (*LocationProvider, error) {
	p := &LocationProvider{
		transport: transport,
		topics:    topics,
		requests:  newRequester(transport, requestTimeout, logger),
		clock:     clock,
		logger:    logger,
		watchers:  make(map[uint64]*watcher),
	}

	for topic, handler := range map[string]MessageHandler{
		topics.Location():        p.handleFix,
		topics.LocationReply():   p.requests.handleReply,
		topics.PermissionReply(): p.requests.handleReply,
	} {
		if err := transport.Subscribe(topic, handler); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *LocationProvider) RequestForegroundPermission(ctx context.Context) (entity.PermissionStatus, error) {
	return p.requestPermission(ctx, PermissionForeground)
}

func (p *LocationProvider) RequestBackgroundPermission(ctx context.Context) (entity.PermissionStatus, error) {
	return p.requestPermission(ctx, PermissionBackground)
}

func (p *LocationProvider) RequestNotificationPermission(ctx context.Context) (entity.PermissionStatus, error) {
	return p.requestPermission(ctx, PermissionNotification)
}

func (p *LocationProvider) requestPermission(ctx context.Context, kind string) (entity.PermissionStatus, error) {
	id := uuid.NewString()

	data, err := p.requests.call(ctx, p.topics.PermissionRequest(), id, PermissionRequest{RequestID: id, Kind: kind})
	if err != nil {
		return entity.PermissionUndetermined, errors.Wrapf(err, "request %s permission", kind)
	}

	var reply PermissionReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return entity.PermissionUndetermined, errors.Wrap(err, "decode permission reply")
	}

	switch reply.Status {
	case entity.PermissionGranted, entity.PermissionDenied:
		return reply.Status, nil
	default:
		return entity.PermissionUndetermined, nil
	}
}

func (p *LocationProvider) CurrentFix(ctx context.Context, accuracy string) (*entity.LocationState, error) {
	id := uuid.NewString()

	data, err := p.requests.call(ctx, p.topics.LocationRequest(), id, FixRequest{RequestID: id, Accuracy: accuracy})
	if err != nil {
		return nil, errors.Wrap(err, "request current location")
	}

	var reply FixReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, errors.Wrap(err, "decode location reply")
	}
	if reply.Error != "" {
		return nil, errors.Errorf("device location unavailable: %s", reply.Error)
	}

	fix := entity.LocationState{Latitude: reply.Latitude, Longitude: reply.Longitude, Timestamp: reply.Timestamp}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = p.clock.Now()
	}

	return &fix, nil
}

// Watch registers a stream consumer. The first watcher turns the device stream on and
// the last Remove turns it off.
func (p *LocationProvider) Watch(ctx context.Context, opts service.WatchOptions, onUpdate func(entity.LocationState), onError func(error)) (service.Subscription, error) {
	p.mu.Lock()
	p.nextID++
	w := &watcher{id: p.nextID, provider: p, opts: opts, onUpdate: onUpdate, onError: onError}
	p.watchers[w.id] = w
	first := len(p.watchers) == 1
	p.mu.Unlock()

	if first {
		if err := p.publishWatch(ctx, WatchCommand{
			Active:        true,
			Accuracy:      opts.Accuracy,
			MinIntervalMs: opts.MinInterval.Milliseconds(),
			MinDistance:   opts.MinDistance,
		}); err != nil {
			p.mu.Lock()
			delete(p.watchers, w.id)
			p.mu.Unlock()

			return nil, errors.Wrap(err, "start device location stream")
		}
	}

	return w, nil
}

// Remove detaches the watcher. It waits for a callback already running.
func (w *watcher) Remove() {
	w.removeOne.Do(func() {
		w.mu.Lock()
		w.removed = true
		w.mu.Unlock()

		w.provider.detach(w.id)
	})
}

func (p *LocationProvider) detach(id uint64) {
	p.mu.Lock()
	delete(p.watchers, id)
	last := len(p.watchers) == 0
	p.mu.Unlock()

	if !last {
		return
	}

	if err := p.publishWatch(context.Background(), WatchCommand{Active: false}); err != nil {
		p.logger.Warn("Failed to stop device location stream", slog.Any("error", err))
	}
}

func (p *LocationProvider) publishWatch(ctx context.Context, cmd WatchCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return errors.Wrap(err, "encode watch command")
	}

	return p.transport.Publish(ctx, p.topics.LocationWatch(), true, payload)
}

func (p *LocationProvider) handleFix(topic string, payload []byte) {
	watchers := p.snapshot()

	var fix entity.LocationState
	if err := json.Unmarshal(payload, &fix); err != nil {
		decodeErr := errors.Wrapf(err, "decode fix on %s", topic)
		for _, w := range watchers {
			w.fail(decodeErr)
		}

		return
	}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = p.clock.Now()
	}

	for _, w := range watchers {
		w.deliver(fix)
	}
}

func (p *LocationProvider) snapshot() []*watcher {
	p.mu.Lock()
	defer p.mu.Unlock()

	watchers := make([]*watcher, 0, len(p.watchers))
	for _, w := range p.watchers {
		watchers = append(watchers, w)
	}

	return watchers
}

// deliver hands fix to the consumer when the watch interval has elapsed or the device
// moved the watch distance since the last delivered fix, whichever comes first.
func (w *watcher) deliver(fix entity.LocationState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.removed || !w.due(fix) {
		return
	}
	w.last = &fix
	w.onUpdate(fix)
}

func (w *watcher) due(fix entity.LocationState) bool {
	if w.last == nil {
		return true
	}
	if w.opts.MinInterval > 0 && fix.Timestamp.Sub(w.last.Timestamp) >= w.opts.MinInterval {
		return true
	}
	if w.opts.MinDistance > 0 && geo.Distance(w.last.Point(), fix.Point()) >= w.opts.MinDistance {
		return true
	}

	return w.opts.MinInterval <= 0 && w.opts.MinDistance <= 0
}

func (w *watcher) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.removed || w.onError == nil {
		return
	}
	w.onError(err)
}
