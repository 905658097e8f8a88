package service

// DevicePairing is the payload a child device scans to join the guardian broker.
type DevicePairing struct {
	Broker      string `json:"broker"`
	TopicPrefix string `json:"topicPrefix"`
	DeviceID    string `json:"deviceId"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR generates a PNG QR code for device pairing
	GeneratePairingQR(pairing DevicePairing) ([]byte, error)

	// ParsePairingQR parses QR code data and returns the pairing payload
	ParsePairingQR(qrData string) (*DevicePairing, error)
}
