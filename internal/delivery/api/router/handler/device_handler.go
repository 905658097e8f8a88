package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/service"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Config *config.Config
	QRCode service.QRCodeService
}

// DeviceHandler serves child device pairing
type DeviceHandler struct {
	pairing service.DevicePairing
	qrCode  service.QRCodeService
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		pairing: service.DevicePairing{
			Broker:      params.Config.MQTT.Broker,
			TopicPrefix: params.Config.MQTT.TopicPrefix,
			DeviceID:    params.Config.MQTT.DeviceID,
		},
		qrCode: params.QRCode,
	}
}

// PairingQR returns a PNG the child device scans to join the broker
func (h *DeviceHandler) PairingQR(c echo.Context) error {
	png, err := h.qrCode.GeneratePairingQR(h.pairing)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
