package usecase

import (
	"context"

	"huddle/internal/realtime"
)

// EventRouter handles the lifecycle and inbound events of realtime sessions.
// Handle is called sequentially per session.
type EventRouter interface {
	Connect(session realtime.Session)
	Disconnect(session realtime.Session)
	Handle(ctx context.Context, session realtime.Session, event realtime.InboundEvent) realtime.Ack
}
