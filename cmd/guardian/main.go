package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/delivery"
	"guardian/internal/delivery/api"
	devicedelivery "guardian/internal/delivery/mqtt"
	"guardian/internal/infra/auth"
	logs "guardian/internal/infra/log"
	"guardian/internal/infra/mqtt"
	"guardian/internal/infra/notification"
	"guardian/internal/infra/persistence/document"
	"guardian/internal/infra/persistence/kv"
	"guardian/internal/infra/pubsub"
	"guardian/internal/infra/qrcode"
	"guardian/internal/infra/websocket"
	"guardian/internal/usecase"
	"guardian/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type monitorParams struct {
	fx.In
	fx.Lifecycle

	Logger      *slog.Logger
	Monitor     usecase.SafeZoneMonitorUsecase
	Broadcaster *websocket.Broadcaster
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startMonitor,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newClock,
		),
		kv.Module,
		mqtt.Module,
		websocket.Module,
		notification.Module,
		pubsub.Module,
	)
}

func newClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			document.NewSafeZoneRepository,
			document.NewSettingsRepository,
			document.NewDashboardRepository,
			document.NewCheckInRepository,
			document.NewDevicePingRepository,
			document.NewAuthAttemptRepository,
			document.NewPinCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPinHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChangeFeed,
			impl.NewSafeZoneService,
			impl.NewParentalService,
			impl.NewParentalAuthService,
			impl.NewSafeZoneMonitor,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		api.Module,
		devicedelivery.Module,
	)
}

// startMonitor streams every status change to the guardian connections and runs the
// monitor for the lifetime of the application. Initialize may wait on the device, so
// it runs in the background.
func startMonitor(ctx context.Context, params monitorParams) {
	var unsubscribe func()

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = params.Monitor.Subscribe(params.Broadcaster.BroadcastStatus)
			go func() {
				if err := params.Monitor.Initialize(ctx); err != nil {
					params.Logger.Error("Failed to initialize safe zone monitor", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return params.Monitor.Dispose(stopCtx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
