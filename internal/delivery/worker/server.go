package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"huddle/config"
	"huddle/internal/delivery"
	"huddle/internal/delivery/middleware"
	"huddle/internal/delivery/worker/handler"
	"huddle/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving Pub/Sub pushes. It is nil when no worker port is configured.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil || params.Cfg.Worker.Port == 0 {
		return nil, nil
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	// Request ID before logger so log lines carry it
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
