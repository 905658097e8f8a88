package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"guardian/internal/errors"
)

// ErrRequestTimeout is returned when the device does not answer in time.
var ErrRequestTimeout = errors.New("device did not answer in time")

// requester correlates request/reply pairs over two topics by request id.
type requester struct {
	transport Transport
	timeout   time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[string]chan []byte
}

func newRequester(transport Transport, timeout time.Duration, logger *slog.Logger) *requester {
	return &requester{
		transport: transport,
		timeout:   timeout,
		logger:    logger,
		pending:   make(map[string]chan []byte),
	}
}

// call publishes request on topic and waits for the reply carrying id.
func (r *requester) call(ctx context.Context, topic, id string, request any) ([]byte, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	reply := make(chan []byte, 1)
	r.mu.Lock()
	r.pending[id] = reply
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.pending, id)
		r.mu.Unlock()
	}()

	if err := r.transport.Publish(ctx, topic, false, payload); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	select {
	case data := <-reply:
		return data, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Wrapf(ErrRequestTimeout, "waiting on %s", topic)
		}

		return nil, ctx.Err()
	}
}

// handleReply is the MessageHandler of a reply topic.
func (r *requester) handleReply(topic string, payload []byte) {
	var probe requestIDProbe
	if err := json.Unmarshal(payload, &probe); err != nil || probe.RequestID == "" {
		r.logger.Warn("Dropping reply without request id", slog.String("topic", topic))

		return
	}

	r.mu.Lock()
	reply, ok := r.pending[probe.RequestID]
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("Dropping late reply", slog.String("topic", topic), slog.String("requestId", probe.RequestID))

		return
	}

	select {
	case reply <- payload:
	default:
	}
}
