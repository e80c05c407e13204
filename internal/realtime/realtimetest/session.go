// Package realtimetest provides an in-memory realtime.Session for tests.
package realtimetest

import (
	"sync"
	"time"

	"huddle/internal/realtime"

	"github.com/google/uuid"
)

// Session records every pushed event.
type Session struct {
	id          string
	userID      string
	connectedAt time.Time

	mu      sync.Mutex
	events  []realtime.OutboundEvent
	pushErr error
}

// NewSession creates a session with a random ID that connected now.
func NewSession(userID string) *Session {
	return NewSessionAt(userID, time.Now())
}

// NewSessionAt creates a session with a random ID that connected at the given time.
func NewSessionAt(userID string, connectedAt time.Time) *Session {
	return &Session{id: uuid.NewString(), userID: userID, connectedAt: connectedAt}
}

func (s *Session) ID() string             { return s.id }
func (s *Session) UserID() string         { return s.userID }
func (s *Session) ConnectedAt() time.Time { return s.connectedAt }

func (s *Session) Push(event realtime.OutboundEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pushErr != nil {
		return s.pushErr
	}
	s.events = append(s.events, event)

	return nil
}

// FailPushes makes subsequent pushes return err.
func (s *Session) FailPushes(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushErr = err
}

// Events returns a copy of the recorded events.
func (s *Session) Events() []realtime.OutboundEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]realtime.OutboundEvent, len(s.events))
	copy(out, s.events)

	return out
}

// EventsNamed returns the recorded events with the given name.
func (s *Session) EventsNamed(name string) []realtime.OutboundEvent {
	var out []realtime.OutboundEvent
	for _, e := range s.Events() {
		if e.Name() == name {
			out = append(out, e)
		}
	}

	return out
}
