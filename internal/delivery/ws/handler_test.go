package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"huddle/config"
	apimiddleware "huddle/internal/delivery/api/middleware"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	mockService "huddle/internal/mocks/service"
	mockUsecase "huddle/internal/mocks/usecase"
	"huddle/internal/realtime"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		WebSocket: config.WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			SendBufferSize:  8,
			MaxMessageSize:  64 * 1024,
			WriteWait:       time.Second,
			PongWait:        time.Minute,
		},
	}
}

type wsFixtures struct {
	server   *httptest.Server
	handler  *Handler
	router   *mockUsecase.MockEventRouter
	resolver *mockService.MockIdentityResolver
}

func createTestServer(t *testing.T, cfg *config.Config) wsFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := mockUsecase.NewMockEventRouter(t)
	resolver := mockService.NewMockIdentityResolver(t)

	auth := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Resolver: resolver})
	handler := NewHandler(HandlerParams{Config: cfg, Logger: logger, Router: router})

	e := echo.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/ws", handler.Serve, auth.Authenticate)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return wsFixtures{server: server, handler: handler, router: router, resolver: resolver}
}

func (f wsFixtures) url(query string) string {
	return "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws" + query
}

// expectSession captures the session on Connect and signals once Disconnect ran
func (f wsFixtures) expectSession(userID string) (<-chan realtime.Session, <-chan struct{}) {
	connected := make(chan realtime.Session, 1)
	disconnected := make(chan struct{})

	f.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(&entity.Identity{UserID: userID, Provider: "jwt"}, nil)
	f.router.EXPECT().Connect(mock.Anything).Run(func(s realtime.Session) { connected <- s }).Return()
	f.router.EXPECT().Disconnect(mock.Anything).Run(func(realtime.Session) { close(disconnected) }).Return()

	return connected, disconnected
}

func readFrame(t *testing.T, conn *websocket.Conn) realtime.Frame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame realtime.Frame
	require.NoError(t, conn.ReadJSON(&frame))

	return frame
}

func readAck(t *testing.T, conn *websocket.Conn) (string, realtime.Ack) {
	t.Helper()

	frame := readFrame(t, conn)
	require.Equal(t, realtime.EventAck, frame.Event)

	var ack realtime.Ack
	require.NoError(t, json.Unmarshal(frame.Data, &ack))

	return frame.ID, ack
}

func waitClosed(t *testing.T, conn *websocket.Conn, disconnected <-chan struct{}) {
	t.Helper()

	require.NoError(t, conn.Close())
	select {
	case <-disconnected:
	case <-time.After(5 * time.Second):
		t.Fatal("session was not disconnected")
	}
}

func TestHandler_RejectsUnauthenticatedHandshake(t *testing.T) {
	f := createTestServer(t, testConfig())

	_, resp, err := websocket.DefaultDialer.Dial(f.url(""), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	f.resolver.EXPECT().Resolve(mock.Anything, "expired").Return(nil, domainerrors.ErrUnauthenticated.WithDetails("token is expired"))

	_, resp, err = websocket.DefaultDialer.Dial(f.url("?token=expired"), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_RoutesFramesAndEchoesAckID(t *testing.T) {
	f := createTestServer(t, testConfig())
	connected, disconnected := f.expectSession("alice")
	roomID := uuid.New()

	f.router.EXPECT().
		Handle(mock.Anything, mock.Anything, realtime.JoinChat{ChatID: roomID.String()}).
		Return(realtime.Succeeded("joined chat room"))

	header := http.Header{"Authorization": []string{"Bearer good"}}
	conn, _, err := websocket.DefaultDialer.Dial(f.url(""), header)
	require.NoError(t, err)

	session := <-connected
	assert.Equal(t, "alice", session.UserID())
	assert.WithinDuration(t, time.Now(), session.ConnectedAt(), 5*time.Second)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "joinChat", "id": "7", "data": roomID.String()}))

	id, ack := readAck(t, conn)
	assert.Equal(t, "7", id)
	assert.True(t, ack.OK())
	assert.Equal(t, "joined chat room", ack.Message)

	waitClosed(t, conn, disconnected)
}

func TestHandler_RejectsBadFramesWithoutRouting(t *testing.T) {
	f := createTestServer(t, testConfig())
	_, disconnected := f.expectSession("alice")

	conn, _, err := websocket.DefaultDialer.Dial(f.url("?token=good"), nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	_, ack := readAck(t, conn)
	assert.Equal(t, "INVALID_FRAME", ack.Code)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "dance", "id": "2"}))
	id, ack := readAck(t, conn)
	assert.Equal(t, "2", id)
	assert.Equal(t, "UNKNOWN_EVENT", ack.Code)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "sendMessage", "id": "3", "data": "oops"}))
	_, ack = readAck(t, conn)
	assert.Equal(t, "INVALID_PAYLOAD", ack.Code)

	waitClosed(t, conn, disconnected)
}

func TestHandler_PushReachesSocket(t *testing.T) {
	f := createTestServer(t, testConfig())
	connected, disconnected := f.expectSession("bob")

	conn, _, err := websocket.DefaultDialer.Dial(f.url("?token=good"), nil)
	require.NoError(t, err)
	session := <-connected

	roomID := uuid.New()
	require.NoError(t, session.Push(realtime.UserTyping{ChatID: roomID, UserID: "alice", IsTyping: true}))

	frame := readFrame(t, conn)
	assert.Equal(t, realtime.EventUserTyping, frame.Event)
	assert.JSONEq(t, `{"chatId":"`+roomID.String()+`","userId":"alice","isTyping":true}`, string(frame.Data))

	waitClosed(t, conn, disconnected)
}

func TestHandler_ShutdownClosesLiveSessions(t *testing.T) {
	f := createTestServer(t, testConfig())
	connected, disconnected := f.expectSession("alice")

	conn, _, err := websocket.DefaultDialer.Dial(f.url("?token=good"), nil)
	require.NoError(t, err)
	defer conn.Close()
	<-connected

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.handler.Shutdown(ctx))

	select {
	case <-disconnected:
	default:
		t.Fatal("Shutdown returned before the session disconnected")
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "err: %v", err)

	// Late upgrades are turned away without reaching the router
	late, _, err := websocket.DefaultDialer.Dial(f.url("?token=good"), nil)
	require.NoError(t, err)
	defer late.Close()

	require.NoError(t, late.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = late.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "err: %v", err)
}

func TestHandler_OriginCheck(t *testing.T) {
	cfg := testConfig()
	cfg.WebSocket.AllowedOrigins = []string{"https://app.example.com"}
	f := createTestServer(t, cfg)
	f.resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(&entity.Identity{UserID: "alice"}, nil)

	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(f.url("?token=good"), header)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestClient_PushIsNonBlocking(t *testing.T) {
	cfg := testConfig().WebSocket
	cfg.SendBufferSize = 1
	client := newClient(nil, "alice", cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := realtime.NotificationsChanged{State: realtime.StateAllRead}

	require.NoError(t, client.Push(event))
	assert.ErrorIs(t, client.Push(event), ErrSendBufferFull)

	client.close()
	assert.ErrorIs(t, client.Push(event), ErrSessionClosed)
}

func TestClient_ReplyDoesNotBlockAfterClose(t *testing.T) {
	cfg := testConfig().WebSocket
	cfg.SendBufferSize = 0
	client := newClient(nil, "alice", cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.close()

	done := make(chan struct{})
	go func() {
		client.reply("1", realtime.Succeeded(nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reply blocked on a closed session")
	}
}

var _ realtime.Session = (*Client)(nil)
