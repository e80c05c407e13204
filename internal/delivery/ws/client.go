// Package ws carries realtime sessions over gorilla/websocket.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"huddle/config"
	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/errors"
	"huddle/internal/realtime"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	ErrSendBufferFull = errors.New("send buffer full")
	ErrSessionClosed  = errors.New("session closed")
)

// Client is one socket connection. It implements realtime.Session.
type Client struct {
	id          string
	userID      string
	connectedAt time.Time
	conn        *websocket.Conn
	logger      *slog.Logger
	router      usecase.EventRouter

	writeWait  time.Duration
	pongWait   time.Duration
	pingPeriod time.Duration
	maxMessage int64

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, userID string, cfg config.WebSocketConfig, router usecase.EventRouter, logger *slog.Logger) *Client {
	id := uuid.NewString()

	return &Client{
		id:          id,
		userID:      userID,
		connectedAt: time.Now(),
		conn:        conn,
		logger:      logger.With(slog.String("session_id", id), slog.String("user_id", userID)),
		router:      router,
		writeWait:   cfg.WriteWait,
		pongWait:    cfg.PongWait,
		pingPeriod:  (cfg.PongWait * 9) / 10,
		maxMessage:  cfg.MaxMessageSize,
		send:        make(chan []byte, cfg.SendBufferSize),
		done:        make(chan struct{}),
	}
}

func (c *Client) ID() string             { return c.id }
func (c *Client) UserID() string         { return c.userID }
func (c *Client) ConnectedAt() time.Time { return c.connectedAt }

// Push never blocks; a slow reader loses events instead of stalling fan-out.
func (c *Client) Push(event realtime.OutboundEvent) error {
	data, err := realtime.EncodeOutbound(event)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return ErrSessionClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("Dropping push for slow session", slog.String("event", event.Name()))

		return errors.Wrapf(ErrSendBufferFull, "session %s", c.id)
	}
}

// reply waits for buffer space since the reader is the one producing acks.
func (c *Client) reply(requestID string, ack realtime.Ack) {
	data, err := realtime.EncodeAck(requestID, ack)
	if err != nil {
		c.logger.Error("Failed to encode ack", slog.Any("error", err))

		return
	}

	select {
	case c.send <- data:
	case <-c.done:
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// goAway tells the peer the server is leaving and drops the connection, which ends readPump.
func (c *Client) goAway(reason string) {
	deadline := time.Now().Add(c.writeWait)
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, reason), deadline)
	c.close()
	_ = c.conn.Close()
}

// run blocks until the connection ends, then unregisters the session.
func (c *Client) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	ctx = deliverycontext.WithLogger(ctx, c.logger)

	c.router.Connect(c)
	defer func() {
		cancel()
		c.router.Disconnect(c)
		c.close()
	}()

	go c.writePump()
	c.readPump(ctx)
}

// readPump handles frames one at a time, so events of one session never interleave.
func (c *Client) readPump(ctx context.Context) {
	defer c.conn.Close()

	c.conn.SetReadLimit(c.maxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("Socket read failed", slog.Any("error", err))
			}

			return
		}

		c.handleFrame(ctx, message)
	}
}

func (c *Client) handleFrame(ctx context.Context, message []byte) {
	var frame realtime.Frame
	if err := json.Unmarshal(message, &frame); err != nil {
		c.reply("", realtime.Rejected("INVALID_FRAME", "frame is not a JSON envelope"))

		return
	}

	event, err := realtime.DecodeInbound(frame)
	if err != nil {
		if errors.Is(err, realtime.ErrUnknownEvent) {
			c.reply(frame.ID, realtime.Rejected("UNKNOWN_EVENT", "unknown event "+frame.Event))

			return
		}
		c.reply(frame.ID, realtime.Rejected("INVALID_PAYLOAD", "payload does not match "+frame.Event))

		return
	}

	requestID := uuid.NewString()
	eventCtx := deliverycontext.WithRequestID(ctx, requestID)
	eventCtx = deliverycontext.WithLogger(eventCtx, c.logger.With(slog.String("request_id", requestID)))

	c.reply(frame.ID, c.router.Handle(eventCtx, c, event))
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Debug("Socket write failed", slog.Any("error", err))
				c.close()

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()

				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

			return
		}
	}
}
