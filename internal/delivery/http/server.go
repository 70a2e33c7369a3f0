package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"roster/config"
	"roster/internal/delivery"
	deliverymw "roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router"
	"roster/internal/delivery/http/validator"
	"roster/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	RouterParams    router.RouterParams
	ErrorMiddleware *deliverymw.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(middleware.Recover())
	echoServer.Use(deliverymw.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(deliverymw.NewLoggerMiddleware(params.Logger, params.Config).Handle)

	// Cross-origin policy gate: only the configured origins may call the API.
	if len(params.Config.HTTP.AllowedOrigins) > 0 {
		echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     params.Config.HTTP.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
			AllowCredentials: true,
		}))
	}

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	srv := echoServer.Server
	srv.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	srv.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	srv.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	srv.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
