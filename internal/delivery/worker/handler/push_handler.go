package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"

	"guardian/config"
	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google signed OIDC token against an audience
type tokenValidator func(ctx context.Context, token, audience string) error

func validateGoogleToken(ctx context.Context, token, audience string) error {
	_, err := idtoken.Validate(ctx, token, audience)

	return errors.WithStack(err)
}

// PushHandler relays safe zone events pushed by Pub/Sub to the guardian devices
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
	clock          clockwork.Clock
	sink           service.NotificationSink
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Clock  clockwork.Clock
	Sink   service.NotificationSink
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       validateGoogleToken,
		logger:         params.Logger,
		clock:          params.Clock,
		sink:           params.Sink,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages are acknowledged
// so Pub/Sub does not redeliver them; delivery failures return 503 to trigger a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.SafeZoneEventMessage
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse safe zone event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.SafeZoneID == "" || (event.Type != entity.SafeZoneEventEntry && event.Type != entity.SafeZoneEventExit) {
		h.logger.Warn("[Worker] Dropping incomplete safe zone event",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Relaying safe zone event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("safe_zone_id", event.SafeZoneID),
		slog.String("event_type", string(event.Type)),
	)

	if err := h.relay(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to relay safe zone event",
			slog.String("safe_zone_id", event.SafeZoneID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) relay(ctx context.Context, event *entity.SafeZoneEventMessage) error {
	notification := entity.NewSafeZoneNotification(event.SafeZoneID, event.SafeZoneName, event.Type, h.clock.Now())
	notification.Data["latitude"] = fmt.Sprintf("%f", event.Latitude)
	notification.Data["longitude"] = fmt.Sprintf("%f", event.Longitude)
	if !event.Timestamp.IsZero() {
		notification.Data["timestamp"] = event.Timestamp.UTC().Format(time.RFC3339)
	}

	return h.sink.Show(ctx, notification)
}

// extractRequestID prefers the publisher's request id, then the X-Request-Id header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	return h.validate(req.Context(), token, audience)
}
