// Package mqtt links the guardian service to the child device through an MQTT broker.
package mqtt

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/errors"
)

const disconnectQuiesceMillis = 250

// MessageHandler receives a payload published on topic.
type MessageHandler func(topic string, payload []byte)

// Transport is the broker connection shared by every device link component.
type Transport interface {
	Publish(ctx context.Context, topic string, retained bool, payload []byte) error

	// Subscribe registers handler for topic. Registrations survive reconnects and may be
	// made before the first connect.
	Subscribe(topic string, handler MessageHandler) error
	Unsubscribe(topic string) error
	IsConnected() bool
}

// PahoTransport implements Transport on top of the Eclipse Paho client.
type PahoTransport struct {
	client  paho.Client
	qos     byte
	timeout time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	handlers map[string]MessageHandler
}

// NewPahoTransport builds a client for cfg without connecting it.
func NewPahoTransport(cfg *config.MQTTConfig, logger *slog.Logger) *PahoTransport {
	t := &PahoTransport{
		qos:      cfg.QoS,
		timeout:  cfg.ConnectTimeout,
		logger:   logger.With(slog.String("component", "mqtt")),
		handlers: make(map[string]MessageHandler),
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("guardian-%d", time.Now().UnixNano())
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetOrderMatters(false).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetOnConnectHandler(t.onConnect).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			t.logger.Warn("MQTT connection lost", slog.Any("error", err))
		})
	if cfg.Username != "" {
		opts = opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}

	t.client = paho.NewClient(opts)

	return t
}

// NewTransportWithLifecycle connects the transport when the application starts and
// disconnects it on shutdown.
func NewTransportWithLifecycle(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) Transport {
	transport := NewPahoTransport(cfg.MQTT, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := transport.Connect(ctx); err != nil {
				// Connect retries in the background; the service keeps starting.
				transport.logger.Warn("MQTT broker not reachable yet", slog.String("broker", cfg.MQTT.Broker), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			transport.Disconnect()

			return nil
		},
	})

	return transport
}

// Connect opens the broker connection and waits at most the configured timeout.
func (t *PahoTransport) Connect(ctx context.Context) error {
	if err := t.wait(ctx, t.client.Connect()); err != nil {
		return errors.Wrap(err, "mqtt connect")
	}
	t.logger.Info("Connected to MQTT broker")

	return nil
}

// Disconnect closes the connection after letting in-flight work finish.
func (t *PahoTransport) Disconnect() {
	t.client.Disconnect(disconnectQuiesceMillis)
	t.logger.Info("Disconnected from MQTT broker")
}

func (t *PahoTransport) IsConnected() bool {
	return t.client.IsConnectionOpen()
}

func (t *PahoTransport) Publish(ctx context.Context, topic string, retained bool, payload []byte) error {
	if err := t.wait(ctx, t.client.Publish(topic, t.qos, retained, payload)); err != nil {
		return errors.Wrapf(err, "mqtt publish %s", topic)
	}

	return nil
}

func (t *PahoTransport) Subscribe(topic string, handler MessageHandler) error {
	t.mu.Lock()
	t.handlers[topic] = handler
	t.mu.Unlock()

	if !t.client.IsConnectionOpen() {
		return nil
	}

	if err := t.wait(context.Background(), t.client.Subscribe(topic, t.qos, t.wrap(handler))); err != nil {
		return errors.Wrapf(err, "mqtt subscribe %s", topic)
	}

	return nil
}

func (t *PahoTransport) Unsubscribe(topic string) error {
	t.mu.Lock()
	delete(t.handlers, topic)
	t.mu.Unlock()

	if !t.client.IsConnectionOpen() {
		return nil
	}

	if err := t.wait(context.Background(), t.client.Unsubscribe(topic)); err != nil {
		return errors.Wrapf(err, "mqtt unsubscribe %s", topic)
	}

	return nil
}

// onConnect restores every registered subscription, including after a reconnect.
func (t *PahoTransport) onConnect(client paho.Client) {
	t.mu.Lock()
	filters := make(map[string]byte, len(t.handlers))
	handlers := make(map[string]MessageHandler, len(t.handlers))
	for topic, handler := range t.handlers {
		filters[topic] = t.qos
		handlers[topic] = handler
	}
	t.mu.Unlock()

	if len(filters) == 0 {
		return
	}

	for topic, handler := range handlers {
		client.AddRoute(topic, t.wrap(handler))
	}

	token := client.SubscribeMultiple(filters, nil)
	go func() {
		if err := t.wait(context.Background(), token); err != nil {
			t.logger.Error("Failed to restore MQTT subscriptions", slog.Any("error", err))
		}
	}()
}

func (t *PahoTransport) wrap(handler MessageHandler) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("MQTT handler panic", slog.String("topic", msg.Topic()), slog.Any("panic", r))
			}
		}()
		handler(msg.Topic(), msg.Payload())
	}
}

func (t *PahoTransport) wait(ctx context.Context, token paho.Token) error {
	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return errors.New("timed out waiting for broker")
	}
}
