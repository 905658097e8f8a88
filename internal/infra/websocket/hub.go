// Package websocket keeps the live guardian connections and fans messages out to them.
package websocket

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 64
)

// Hub maintains the set of active WebSocket clients and broadcasts messages.
type Hub struct {
	logger *slog.Logger

	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub event loop. It returns when ctx is done, closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()

			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("WebSocket client connected", slog.Int("total", total))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("WebSocket client disconnected", slog.Int("total", total))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client, drop it rather than stall everyone else
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues message for every connected client. It never blocks.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("WebSocket broadcast channel full, dropping message")
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Client represents a WebSocket client connection.
type Client struct {
	send chan []byte
}

// NewClient creates a new WebSocket client.
func NewClient() *Client {
	return &Client{send: make(chan []byte, clientBuffer)}
}

// Send returns the channel of messages queued for the client. It is closed when the
// hub drops the client.
func (c *Client) Send() <-chan []byte {
	return c.send
}

// NewHubWithLifecycle creates the hub and runs it for the lifetime of the application.
func NewHubWithLifecycle(lc fx.Lifecycle, logger *slog.Logger) *Hub {
	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-hub.done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})

	return hub
}

// Module provides the WebSocket hub and its broadcaster
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHubWithLifecycle, NewBroadcaster),
)
