package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
)

const (
	pairingType    = "guardian_pairing"
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type string `json:"type"`
	service.DevicePairing
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig creates the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, defaultQRLevel)
	}

	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultQRSize
	}

	return NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePairingQR generates a QR code the child device scans to join the broker
func (s *qrcodeService) GeneratePairingQR(pairing service.DevicePairing) ([]byte, error) {
	if pairing.Broker == "" || pairing.DeviceID == "" {
		return nil, errors.New("pairing requires broker and device ID")
	}

	jsonData, err := json.Marshal(QRCodeData{Type: pairingType, DevicePairing: pairing})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePairingQR parses QR code data and returns the pairing payload
func (s *qrcodeService) ParsePairingQR(qrData string) (*service.DevicePairing, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pairingType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Broker == "" || data.DeviceID == "" {
		return nil, errors.New("pairing QR code is missing broker or device ID")
	}

	return &data.DevicePairing, nil
}
