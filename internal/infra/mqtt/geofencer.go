package mqtt

import (
	"context"
	"encoding/json"

	"guardian/internal/domain/entity"
	"guardian/internal/errors"
)

// Geofencer publishes the region list retained so the device registers it with its OS
// whenever it (re)connects.
type Geofencer struct {
	transport Transport
	topics    Topics
}

func NewGeofencer(transport Transport, topics Topics) *Geofencer {
	return &Geofencer{transport: transport, topics: topics}
}

// Available reports whether the device link is up.
func (g *Geofencer) Available(context.Context) bool {
	return g.transport.IsConnected()
}

func (g *Geofencer) Start(ctx context.Context, regions []entity.GeofenceRegion) error {
	if regions == nil {
		regions = []entity.GeofenceRegion{}
	}

	return g.publish(ctx, GeofenceCommand{Regions: regions})
}

func (g *Geofencer) Stop(ctx context.Context) error {
	return g.publish(ctx, GeofenceCommand{Regions: []entity.GeofenceRegion{}})
}

func (g *Geofencer) publish(ctx context.Context, cmd GeofenceCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return errors.Wrap(err, "encode geofence command")
	}

	return g.transport.Publish(ctx, g.topics.Geofences(), true, payload)
}
