// Package notification delivers guardian alerts through push, in-app banners and logs.
package notification

import (
	"context"
	"log/slog"
	"maps"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

const priorityDataKey = "priority"

// pushSink sends alerts to the registered guardian devices.
type pushSink struct {
	push   service.PushService
	tokens []string
	logger *slog.Logger
}

// NewPushSink creates a sink sending every notification to tokens.
func NewPushSink(push service.PushService, tokens []string, logger *slog.Logger) service.NotificationSink {
	return &pushSink{push: push, tokens: tokens, logger: logger}
}

func (s *pushSink) Show(ctx context.Context, notification *entity.Notification) error {
	if len(s.tokens) == 0 {
		return nil
	}

	data := maps.Clone(notification.Data)
	if data == nil {
		data = make(map[string]string, 1)
	}
	data[priorityDataKey] = string(notification.Priority)

	success, failure, invalid, err := s.push.SendBatchNotification(ctx, s.tokens, notification.Title, notification.Body, data)
	if err != nil {
		return errors.Wrap(err, "push notification")
	}
	if len(invalid) > 0 {
		s.logger.Warn("Guardian push tokens rejected", slog.Int("count", len(invalid)))
	}
	if success == 0 && failure > 0 {
		return errors.Errorf("push notification failed for all %d guardian devices", failure)
	}

	return nil
}

// logSink records every alert in the application log.
type logSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink that only logs.
func NewLogSink(logger *slog.Logger) service.NotificationSink {
	return &logSink{logger: logger}
}

func (s *logSink) Show(_ context.Context, notification *entity.Notification) error {
	s.logger.Info("Guardian notification",
		slog.String("title", notification.Title),
		slog.String("body", notification.Body),
		slog.String("priority", string(notification.Priority)),
	)

	return nil
}

// fanOutSink shows a notification on every sink. It fails only if every sink failed.
type fanOutSink struct {
	sinks []service.NotificationSink
}

// NewFanOutSink combines sinks.
func NewFanOutSink(sinks ...service.NotificationSink) service.NotificationSink {
	return &fanOutSink{sinks: sinks}
}

func (s *fanOutSink) Show(ctx context.Context, notification *entity.Notification) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Show(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 && len(errs) == len(s.sinks) {
		return errors.Join(errs...)
	}

	return nil
}
