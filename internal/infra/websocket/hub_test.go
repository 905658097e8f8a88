package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/internal/domain/entity"
)

func runHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})

	return hub
}

func receive(t *testing.T, client *Client) Message {
	t.Helper()

	select {
	case raw, ok := <-client.Send():
		require.True(t, ok, "client channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))

		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}

	return Message{}
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := runHub(t)
	first, second := NewClient(), NewClient()
	hub.Register(first)
	hub.Register(second)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	broadcaster := NewBroadcaster(hub, clockwork.NewFakeClock(), slog.New(slog.DiscardHandler))
	broadcaster.BroadcastStatus(&entity.SafeZoneStatus{TotalActive: 2, IsMonitoring: true})

	for _, client := range []*Client{first, second} {
		msg := receive(t, client)
		assert.Equal(t, TypeSafeZoneStatus, msg.Type)
		payload, ok := msg.Payload.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 2, payload["totalActive"])
	}
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	hub := runHub(t)
	client := NewClient()
	hub.Register(client)
	hub.Unregister(client)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-client.Send()
	assert.False(t, ok)

	// A second unregister is harmless.
	hub.Unregister(client)
}

func TestBroadcaster_ShowSendsBanner(t *testing.T) {
	hub := runHub(t)
	client := NewClient()
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	broadcaster := NewBroadcaster(hub, clockwork.NewFakeClock(), slog.New(slog.DiscardHandler))
	err := broadcaster.Show(context.Background(), &entity.Notification{
		Title:    "🔴 Safe Zone Exit",
		Body:     "Child has left Home",
		Priority: entity.NotificationPriorityHigh,
	})
	require.NoError(t, err)

	msg := receive(t, client)
	assert.Equal(t, TypeNotification, msg.Type)
	payload, ok := msg.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "warning", payload["level"])
	assert.Equal(t, "Child has left Home", payload["message"])
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub(slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := NewClient()
	hub.Register(client)
	cancel()
	<-hub.done

	_, ok := <-client.Send()
	assert.False(t, ok)

	// Registering after shutdown closes the client instead of blocking.
	late := NewClient()
	hub.Register(late)
	_, ok = <-late.Send()
	assert.False(t, ok)
}
