// Package persistence selects the account store named by storage.driver.
package persistence

import (
	"context"
	"log/slog"

	"admission/config"
	"admission/internal/domain/lifecycle"
	"admission/internal/domain/repository"
	"admission/internal/errors"
	"admission/internal/infra/persistence/postgres"
	"admission/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params defines the dependencies of the account store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository opens the configured store and ties its shutdown to
// the application lifecycle.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	driver := config.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	params.Logger.Info("Opening account store", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewAccountRepository(db), nil

	case config.StorageDriverSQLite:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		store, err := sqlite.Open(ctx, params.Config.Storage.SQLite.Path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite account store")
		}
		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store.Accounts(), nil

	default:
		return nil, errors.Errorf("unsupported storage driver %q", driver)
	}
}
