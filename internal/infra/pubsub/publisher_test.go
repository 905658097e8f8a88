package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/entity"
)

func sampleEvent() *entity.SafeZoneEventMessage {
	return &entity.SafeZoneEventMessage{
		SafeZoneID:   "home",
		SafeZoneName: "Home",
		Type:         entity.SafeZoneEventEntry,
		Latitude:     40.7128,
		Longitude:    -74.006,
		Timestamp:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishSafeZoneEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "home", received.Message.Attributes["safe_zone_id"])
	assert.Equal(t, "entry", received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.SafeZoneEventMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *sampleEvent(), decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishSafeZoneEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher_Selection(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	publisher, err := NewEventPublisher(PublisherParams{Config: &config.Config{}, Logger: logger, Ctx: context.Background()})
	require.NoError(t, err)
	assert.IsType(t, &disabledPublisher{}, publisher)
	require.NoError(t, publisher.PublishSafeZoneEvent(context.Background(), sampleEvent()))

	_, err = NewEventPublisher(PublisherParams{
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: logger,
		Ctx:    context.Background(),
	})
	require.Error(t, err, "local provider needs an endpoint")

	_, err = NewEventPublisher(PublisherParams{
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: logger,
		Ctx:    context.Background(),
	})
	require.Error(t, err)
}

func TestLocalHTTPPublisher_ForwardsRequestID(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishSafeZoneEvent(ctx, sampleEvent()))

	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])
}
