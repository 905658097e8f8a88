package service

import (
	"context"

	"guardian/internal/domain/entity"
)

// DeviceMessenger delivers guardian requests to the child device.
type DeviceMessenger interface {
	SendPing(ctx context.Context, ping *entity.DevicePingRequest) error
	SendCheckInRequest(ctx context.Context, request *entity.CheckInRequest) error
}
