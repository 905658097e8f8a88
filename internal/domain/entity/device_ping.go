package entity

import "time"

type DevicePingType string

const (
	DevicePingLocation DevicePingType = "location"
	DevicePingRing     DevicePingType = "ring"
	DevicePingMessage  DevicePingType = "message"
)

type DevicePingStatus string

const (
	DevicePingPending      DevicePingStatus = "pending"
	DevicePingAcknowledged DevicePingStatus = "acknowledged"
	DevicePingFailed       DevicePingStatus = "failed"
)

// DevicePingResponse is what the child device answered.
type DevicePingResponse struct {
	Timestamp time.Time   `json:"timestamp"`
	Location  *Coordinate `json:"location,omitempty"`
}

// DevicePingRequest is a guardian request to locate, ring or message the child device.
type DevicePingRequest struct {
	ID          string              `json:"id"`
	Type        DevicePingType      `json:"type"`
	Message     string              `json:"message,omitempty"`
	RequestedAt time.Time           `json:"requestedAt"`
	Status      DevicePingStatus    `json:"status"`
	Response    *DevicePingResponse `json:"response,omitempty"`
}
