package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"huddle/config"
	"huddle/internal/delivery"
	apimiddleware "huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/router"
	"huddle/internal/delivery/api/validator"
	"huddle/internal/delivery/middleware"
	"huddle/internal/delivery/ws"
	"huddle/internal/domain/lifecycle"
	"huddle/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *echo.Echo
	sockets *ws.Handler
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server for REST routes and the socket upgrade
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	echoServer.Use(echomiddleware.Recover())

	// Request ID before logger so log lines carry it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(params.Cfg.WebSocket.AllowedOrigins),
	}))
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:     params.Cfg,
		logger:  params.Logger,
		server:  echoServer,
		sockets: params.RouterParams.WSHandler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
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

	s.logger.Info("Shutting down API HTTP server")

	// Hijacked sockets are invisible to http.Server.Shutdown
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return s.sockets.Shutdown(shutdownCtx)
}

func corsOrigins(allowed []string) []string {
	if len(allowed) == 0 {
		return []string{"*"}
	}

	return allowed
}
