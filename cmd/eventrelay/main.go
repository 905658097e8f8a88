package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/worker"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/notification"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newClock,
		),
		notification.Module,
		worker.Module,
		fx.Invoke(startServer),
	).Run()
}

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
