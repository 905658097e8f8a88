// Package delivery holds the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long running inbound surface. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
