package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSafeZoneEvent publishes a zone transition for analytics and other subscribers
	PublishSafeZoneEvent(ctx context.Context, event *entity.SafeZoneEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
