package websocket

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"guardian/internal/domain/entity"
	"guardian/internal/errors"
)

// Broadcaster turns domain updates into hub messages.
type Broadcaster struct {
	hub    *Hub
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewBroadcaster creates a broadcaster over hub.
func NewBroadcaster(hub *Hub, clock clockwork.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{hub: hub, clock: clock, logger: logger}
}

// Show delivers a notification as an in-app banner. It satisfies service.NotificationSink.
func (b *Broadcaster) Show(_ context.Context, notification *entity.Notification) error {
	raw, err := NewMessage(TypeNotification, b.clock.Now(), notificationPayload(notification)).JSON()
	if err != nil {
		return errors.Wrap(err, "encode notification banner")
	}
	b.hub.Broadcast(raw)

	return nil
}

// BroadcastStatus pushes the monitor status to every connected client. A nil status
// (no fix yet) is sent as JSON null.
func (b *Broadcaster) BroadcastStatus(status *entity.SafeZoneStatus) {
	raw, err := NewMessage(TypeSafeZoneStatus, b.clock.Now(), status).JSON()
	if err != nil {
		b.logger.Error("Failed to encode safe zone status", slog.Any("error", err))
		return
	}
	b.hub.Broadcast(raw)
}
