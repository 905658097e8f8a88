package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// NotificationSink shows an alert to the guardian, as a push message, an in-app banner or both.
type NotificationSink interface {
	Show(ctx context.Context, notification *entity.Notification) error
}

// PushService defines the interface for push notification services
type PushService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// Alerter surfaces a blocking, user-actionable message on the child device,
// for instance when location permission is denied.
type Alerter interface {
	Alert(ctx context.Context, title, message string) error
}
