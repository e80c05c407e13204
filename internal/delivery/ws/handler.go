package ws

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"huddle/config"
	"huddle/internal/delivery/api/middleware"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/errors"
	"huddle/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Router usecase.EventRouter
}

// Handler upgrades authenticated requests to realtime sessions.
type Handler struct {
	cfg      config.WebSocketConfig
	logger   *slog.Logger
	router   usecase.EventRouter
	upgrader websocket.Upgrader

	mu       sync.Mutex
	closing  bool
	sessions map[*Client]context.CancelFunc
	wg       sync.WaitGroup
}

func NewHandler(params HandlerParams) *Handler {
	cfg := params.Config.WebSocket

	return &Handler{
		cfg:    cfg,
		logger: params.Logger,
		router: params.Router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
		sessions: make(map[*Client]context.CancelFunc),
	}
}

// Serve must run behind AuthMiddleware.Authenticate so unauthenticated callers get 401 before the upgrade.
// It blocks for the lifetime of the connection.
func (h *Handler) Serve(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Warn("WebSocket upgrade failed", slog.String("user_id", userID), slog.Any("error", err))

		return nil
	}

	client := newClient(conn, userID, h.cfg, h.router, h.logger)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	if !h.track(client, cancel) {
		client.goAway("server shutting down")

		return nil
	}
	defer h.untrack(client)

	client.run(ctx)

	return nil
}

// Shutdown closes every live session with a going-away frame and waits for their
// disconnects to finish. Upgrades that arrive afterwards are closed immediately.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closing = true
	live := make(map[*Client]context.CancelFunc, len(h.sessions))
	for client, cancel := range h.sessions {
		live[client] = cancel
	}
	h.mu.Unlock()

	if len(live) > 0 {
		h.logger.Info("Closing realtime sessions", slog.Int("sessions", len(live)))
	}

	for client, cancel := range live {
		cancel()
		client.goAway("server shutting down")
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for realtime sessions to close")
	}
}

func (h *Handler) track(client *Client, cancel context.CancelFunc) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closing {
		return false
	}
	h.sessions[client] = cancel
	h.wg.Add(1)

	return true
}

func (h *Handler) untrack(client *Client) {
	h.mu.Lock()
	delete(h.sessions, client)
	h.mu.Unlock()

	h.wg.Done()
}

// originChecker allows every origin when none are configured
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		return origin == "" || slices.Contains(allowed, origin)
	}
}
