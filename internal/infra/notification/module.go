package notification

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/infra/websocket"
)

// SinkParams holds dependencies for the guardian notification sink, injected by Fx
type SinkParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Broadcaster *websocket.Broadcaster `optional:"true"`
}

// NewNotificationSink combines the log, in-app banner and, when configured, Firebase push.
func NewNotificationSink(params SinkParams) (service.NotificationSink, error) {
	sinks := []service.NotificationSink{NewLogSink(params.Logger)}
	if params.Broadcaster != nil {
		sinks = append(sinks, params.Broadcaster)
	}

	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return NewFanOutSink(sinks...), nil
	}

	push, err := NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Firebase push enabled", slog.Int("guardianDevices", len(cfg.GuardianTokens)))

	return NewFanOutSink(append(sinks, NewPushSink(push, cfg.GuardianTokens, params.Logger))...), nil
}

// Module provides the guardian notification sink
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationSink),
)
