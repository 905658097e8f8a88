package notification

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/errors"
	mockSvc "guardian/internal/mocks/service"
)

func exitNotification() *entity.Notification {
	return &entity.Notification{
		Title:    "🔴 Safe Zone Exit",
		Body:     "Child has left Home",
		Data:     map[string]string{"safeZoneId": "home"},
		Priority: entity.NotificationPriorityHigh,
	}
}

func TestPushSink_SendsToGuardianTokens(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	sink := NewPushSink(push, []string{"token-a", "token-b"}, slog.New(slog.DiscardHandler))
	notification := exitNotification()

	push.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, "🔴 Safe Zone Exit", "Child has left Home",
			map[string]string{"safeZoneId": "home", "priority": "high"}).
		Return(1, 1, []string{"token-b"}, nil).
		Once()

	require.NoError(t, sink.Show(context.Background(), notification))
	assert.NotContains(t, notification.Data, "priority", "caller data is not modified")
}

func TestPushSink_AllFailed(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	sink := NewPushSink(push, []string{"token-a"}, slog.New(slog.DiscardHandler))
	push.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{}, nil).
		Once()

	require.Error(t, sink.Show(context.Background(), exitNotification()))
}

func TestPushSink_NoTokens(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	sink := NewPushSink(push, nil, slog.New(slog.DiscardHandler))

	require.NoError(t, sink.Show(context.Background(), exitNotification()))
}

func TestFanOutSink(t *testing.T) {
	failing := mockSvc.NewMockNotificationSink(t)
	working := mockSvc.NewMockNotificationSink(t)
	notification := exitNotification()

	failing.EXPECT().Show(mock.Anything, notification).Return(errors.New("offline")).Twice()
	working.EXPECT().Show(mock.Anything, notification).Return(nil).Once()

	require.NoError(t, NewFanOutSink(failing, working).Show(context.Background(), notification))
	require.Error(t, NewFanOutSink(failing).Show(context.Background(), notification))
}

func TestNewNotificationSink_WithoutFirebase(t *testing.T) {
	sink, err := NewNotificationSink(SinkParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	require.NoError(t, sink.Show(context.Background(), exitNotification()))
}
