package websocket

import (
	"encoding/json"
	"time"

	"guardian/internal/domain/entity"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	TypeSafeZoneStatus MessageType = "safe_zone.status"
	TypeNotification   MessageType = "notification"
)

// Message represents a WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a new message stamped with at.
func NewMessage(msgType MessageType, at time.Time, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: at.UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message to JSON bytes.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationPayload is the in-app banner shown to connected guardians.
type NotificationPayload struct {
	Level    string            `json:"level"` // info or warning
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Data     map[string]string `json:"data,omitempty"`
	Priority string            `json:"priority"`
}

func notificationPayload(n *entity.Notification) NotificationPayload {
	level := "info"
	if n.Priority == entity.NotificationPriorityHigh {
		level = "warning"
	}

	return NotificationPayload{
		Level:    level,
		Title:    n.Title,
		Message:  n.Body,
		Data:     n.Data,
		Priority: string(n.Priority),
	}
}
