// Package kv exposes the general and secure key-value stores on top of a pluggable backend.
package kv

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/lifecycle"
	"guardian/internal/errors"
	"guardian/internal/infra/persistence/memory"
	"guardian/internal/infra/persistence/postgres"
	"guardian/internal/infra/persistence/sqlite"
)

// Backend stores raw values grouped by namespace.
type Backend interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBackend opens the backend selected by storage.driver.
func NewBackend(params Params) (Backend, error) {
	driver := config.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")

		return memory.New(), nil

	case config.StorageDriverSQLite:
		backend, err := sqlite.Open(params.Config.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return backend.InitSchema(ctx)
			},
			OnStop: func(_ context.Context) error {
				return backend.Close()
			},
		})
		params.Logger.Info("Using SQLite storage", slog.String("path", params.Config.Storage.SQLitePath))

		return backend, nil

	case config.StorageDriverPostgres:
		db, err := postgres.Connect(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, err
		}
		backend := postgres.NewBackend(db)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return backend.Migrate(ctx)
			},
		})
		params.Logger.Info("Using PostgreSQL storage")

		return backend, nil

	default:
		return nil, errors.Errorf("unknown storage driver %q", driver)
	}
}
