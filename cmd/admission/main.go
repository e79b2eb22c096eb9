package main

import (
	"context"
	"log/slog"

	"admission/config"
	"admission/internal/delivery"
	"admission/internal/delivery/api"
	"admission/internal/delivery/api/router/handler"
	"admission/internal/infra/auth"
	logs "admission/internal/infra/log"
	"admission/internal/infra/persistence"
	"admission/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		infraModule,
		accountModule,
		httpModule,
		fx.Invoke(serve),
	).Run()
}

var infraModule = fx.Module("infra",
	fx.Provide(
		config.New,
		logs.New,
		context.Background,
	),
)

var accountModule = fx.Module("account",
	fx.Provide(
		persistence.NewAccountRepository,
		auth.NewArgon2Hasher,
		impl.NewAccountService,
	),
)

var httpModule = fx.Module("http",
	fx.Provide(
		handler.NewAccountHandler,
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)

type serveParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// serve runs every delivery in the background. A delivery that stops with an
// error shuts the whole app down with a non-zero exit code.
func serve(ctx context.Context, params serveParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("delivery stopped", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
