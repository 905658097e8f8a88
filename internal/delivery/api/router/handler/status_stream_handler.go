package handler

import (
	"log/slog"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/internal/infra/websocket"
	"guardian/internal/usecase"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
)

// StatusStreamHandlerParams holds dependencies for StatusStreamHandler, injected by Fx.
type StatusStreamHandlerParams struct {
	fx.In

	Hub       *websocket.Hub
	MonitorUC usecase.SafeZoneMonitorUsecase
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// StatusStreamHandler upgrades guardian connections to a live status and banner stream
type StatusStreamHandler struct {
	hub       *websocket.Hub
	monitorUC usecase.SafeZoneMonitorUsecase
	clock     clockwork.Clock
	logger    *slog.Logger
	upgrader  gorillaws.Upgrader
}

// NewStatusStreamHandler is the constructor for StatusStreamHandler
func NewStatusStreamHandler(params StatusStreamHandlerParams) *StatusStreamHandler {
	return &StatusStreamHandler{
		hub:       params.Hub,
		monitorUC: params.MonitorUC,
		clock:     params.Clock,
		logger:    params.Logger,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Stream sends the current status first, then every status change and notification banner.
func (h *StatusStreamHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	snapshot, err := websocket.NewMessage(websocket.TypeSafeZoneStatus, h.clock.Now(), h.monitorUC.CurrentSafeZoneStatus()).JSON()
	if err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		err = conn.WriteMessage(gorillaws.TextMessage, snapshot)
	}
	if err != nil {
		_ = conn.Close()

		return nil
	}

	client := websocket.NewClient()
	h.hub.Register(client)

	go h.writePump(conn, client)
	go h.readPump(conn, client)

	return nil
}

func (h *StatusStreamHandler) writePump(conn *gorillaws.Conn, client *websocket.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(gorillaws.CloseMessage, []byte{})

				return
			}
			if err := conn.WriteMessage(gorillaws.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(gorillaws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only keeps the connection alive; guardians do not send commands over it.
func (h *StatusStreamHandler) readPump(conn *gorillaws.Conn, client *websocket.Client) {
	defer func() {
		h.hub.Unregister(client)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseAbnormalClosure) {
				h.logger.Debug("WebSocket read error", slog.Any("error", err))
			}

			return
		}
	}
}
