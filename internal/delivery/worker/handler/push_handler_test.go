package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/errors"
	mockservice "guardian/internal/mocks/service"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockservice.MockNotificationSink) {
	t.Helper()

	sink := mockservice.NewMockNotificationSink(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
		Sink:   sink,
	})

	return h, sink
}

func pushBody(t *testing.T, payload any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/guardian-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RelaysEvent(t *testing.T) {
	h, sink := newTestPushHandler(t, &config.Config{})

	event := entity.SafeZoneEventMessage{
		SafeZoneID:   "zone-1",
		SafeZoneName: "School",
		Type:         entity.SafeZoneEventExit,
		Latitude:     25.033,
		Longitude:    121.5654,
		Timestamp:    time.Date(2024, 5, 1, 7, 59, 0, 0, time.UTC),
	}

	sink.EXPECT().Show(mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.Title == "🔴 Safe Zone Exit" &&
			n.Body == "Child has left School" &&
			n.Data["safeZoneId"] == "zone-1" &&
			n.Data["latitude"] == "25.033000" &&
			n.Data["timestamp"] == "2024-05-01T07:59:00Z"
	})).Return(nil).Once()

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-9"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	tests := []struct {
		name string
		body string
	}{
		{name: "envelope is not json", body: "{not json"},
		{name: "data is not base64", body: `{"message":{"data":"%%%","messageId":"m"}}`},
		{name: "payload is not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := servePush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_DropsIncompleteEvent(t *testing.T) {
	h, sink := newTestPushHandler(t, &config.Config{})

	rec := servePush(h, pushBody(t, entity.SafeZoneEventMessage{Type: entity.SafeZoneEventEntry}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	sink.AssertNotCalled(t, "Show", mock.Anything, mock.Anything)
}

func TestPushHandler_SinkFailureAsksForRetry(t *testing.T) {
	h, sink := newTestPushHandler(t, &config.Config{})

	sink.EXPECT().Show(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable")).Once()

	event := entity.SafeZoneEventMessage{SafeZoneID: "zone-1", SafeZoneName: "Home", Type: entity.SafeZoneEventEntry}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	h, sink := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) error {
		gotAudience = audience
		if token != "good" {
			return errors.New("bad token")
		}

		return nil
	}

	event := entity.SafeZoneEventMessage{SafeZoneID: "zone-1", SafeZoneName: "Home", Type: entity.SafeZoneEventEntry}

	t.Run("missing header", func(t *testing.T) {
		rec := servePush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer bad"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})

	t.Run("valid token", func(t *testing.T) {
		sink.EXPECT().Show(mock.Anything, mock.Anything).Return(nil).Once()

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer good"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNewPushHandler_LocalSkipsVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvLocal

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
