package postgres

import (
	"context"
	"log/slog"

	"admission/config"
	"admission/internal/domain/lifecycle"
	"admission/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the account database. The pool must answer a ping before the
// app starts and is closed when it stops.
func New(params Params) (*gorm.DB, error) {
	if params.Config == nil || params.Config.Postgres == nil {
		return nil, errors.New("postgres section missing for storage.driver=postgres")
	}

	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Account writes are single statements and need no wrapping transaction.
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	pool, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(pool.PingContext(ctx), "ping postgres")
		},
		OnStop: func(ctx context.Context) error {
			stats := pool.Stats()
			if params.Logger != nil {
				params.Logger.InfoContext(ctx, "closing postgres pool",
					slog.Int("openConns", stats.OpenConnections),
					slog.Int64("waitCount", stats.WaitCount),
					slog.Duration("waitDuration", stats.WaitDuration),
				)
			}

			return pool.Close()
		},
	})

	return db, nil
}
