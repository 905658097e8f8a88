package mqtt

import (
	"context"
	"encoding/json"

	"guardian/internal/domain/entity"
	"guardian/internal/errors"
)

// Messenger sends alerts, pings and check-in requests to the device.
type Messenger struct {
	transport Transport
	topics    Topics
}

func NewMessenger(transport Transport, topics Topics) *Messenger {
	return &Messenger{transport: transport, topics: topics}
}

func (m *Messenger) Alert(ctx context.Context, title, message string) error {
	return m.send(ctx, m.topics.Alerts(), AlertCommand{Title: title, Message: message})
}

func (m *Messenger) SendPing(ctx context.Context, ping *entity.DevicePingRequest) error {
	return m.send(ctx, m.topics.Pings(), ping)
}

func (m *Messenger) SendCheckInRequest(ctx context.Context, request *entity.CheckInRequest) error {
	return m.send(ctx, m.topics.CheckIns(), request)
}

func (m *Messenger) send(ctx context.Context, topic string, message any) error {
	if !m.transport.IsConnected() {
		return errors.New("device link is not connected")
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "encode device message")
	}

	return m.transport.Publish(ctx, topic, false, payload)
}
