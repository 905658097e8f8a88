// Package pubsub publishes safe zone transitions for subscribers outside the monitor,
// either to Google Cloud Pub/Sub or as push requests to a local event relay.
package pubsub

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

// disabledPublisher drops events when no provider is configured
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishSafeZoneEvent(_ context.Context, event *entity.SafeZoneEventMessage) error {
	p.logger.Debug("[PubSub] Publishing disabled, dropping safe zone event",
		slog.String("safe_zone_id", event.SafeZoneID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the publisher for the configured provider and closes it on shutdown
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, safe zone events stay local")

		return &disabledPublisher{logger: params.Logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				params.Logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

				return publisher.Close()
			},
		})
	}

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing safe zone events to the local relay", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
