package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"admission/config"
	"admission/internal/delivery"
	apimiddleware "admission/internal/delivery/api/middleware"
	"admission/internal/delivery/api/router"
	"admission/internal/delivery/middleware"
	"admission/internal/domain/lifecycle"
	"admission/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server and registers its shutdown with the lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams))

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func newEcho(cfg *config.Config, logger *slog.Logger, routes routeRegistrar) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	applyTimeouts(echoServer.Server, cfg)

	// Order matters: panics are recovered below everything, and the request
	// logger must exist before the access log and handlers run.
	echoServer.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	routes.RegisterRoutes(echoServer)

	return echoServer
}

func applyTimeouts(srv *http.Server, cfg *config.Config) {
	t := cfg.HTTP.Timeouts
	srv.ReadTimeout = t.ReadTimeout
	srv.ReadHeaderTimeout = t.ReadHeaderTimeout
	srv.WriteTimeout = t.WriteTimeout
	srv.IdleTimeout = t.IdleTimeout
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "admission API listening",
		slog.String("addr", hostPort),
		slog.String("storage", storageDriver(s.cfg)),
	)
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "admission API shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

func storageDriver(cfg *config.Config) string {
	if cfg.Storage == nil {
		return config.StorageDriverPostgres
	}

	return cfg.Storage.Driver
}
