package mqtt

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/service"
)

// DeviceLinkParams holds dependencies for the device link components, injected by Fx
type DeviceLinkParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Clock     clockwork.Clock
	Transport Transport
}

// DeviceLink groups the device facing services built on one broker connection.
type DeviceLink struct {
	fx.Out

	Topics    Topics
	Location  service.LocationProvider
	Geofencer service.Geofencer
	Alerter   service.Alerter
	Messenger service.DeviceMessenger
}

// NewDeviceLink wires the location provider, geofencer and messenger of the paired device.
func NewDeviceLink(params DeviceLinkParams) (DeviceLink, error) {
	cfg := params.Config.MQTT
	topics := NewTopics(cfg.TopicPrefix, cfg.DeviceID)
	logger := params.Logger.With(slog.String("deviceId", cfg.DeviceID))

	location, err := NewLocationProvider(params.Transport, topics, cfg.RequestTimeout, params.Clock, logger)
	if err != nil {
		return DeviceLink{}, err
	}

	var geofencer service.Geofencer
	if params.Config.Monitor == nil || params.Config.Monitor.GeofencingEnabled {
		geofencer = NewGeofencer(params.Transport, topics)
	}
	messenger := NewMessenger(params.Transport, topics)

	return DeviceLink{
		Topics:    topics,
		Location:  location,
		Geofencer: geofencer,
		Alerter:   messenger,
		Messenger: messenger,
	}, nil
}

// Module provides the MQTT transport and the device link
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransportWithLifecycle),
	fx.Provide(NewDeviceLink),
)
