package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardian/config"
	"guardian/internal/domain/service"
)

func samplePairing() service.DevicePairing {
	return service.DevicePairing{
		Broker:      "tcp://broker.local:1883",
		TopicPrefix: "guardian",
		DeviceID:    "child-phone",
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePairingQR(samplePairing())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePairingQR_RequiresBrokerAndDevice(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePairingQR(service.DevicePairing{DeviceID: "child-phone"})
	require.Error(t, err)

	_, err = svc.GeneratePairingQR(service.DevicePairing{Broker: "tcp://broker.local:1883"})
	require.Error(t, err)
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	raw, err := json.Marshal(QRCodeData{Type: "guardian_pairing", DevicePairing: samplePairing()})
	require.NoError(t, err)

	pairing, err := svc.ParsePairingQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, samplePairing(), *pairing)
}

func TestQRCodeService_ParsePairingQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"invalid JSON", "not json"},
		{"wrong type", `{"type":"subscription","broker":"tcp://b:1883","deviceId":"x"}`},
		{"missing device", `{"type":"guardian_pairing","broker":"tcp://b:1883"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePairingQR(tt.data)
			require.Error(t, err)
		})
	}
}
