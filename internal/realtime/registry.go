package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a live, authenticated connection.
type Session interface {
	ID() string
	UserID() string
	ConnectedAt() time.Time
	// Push enqueues an event without blocking; it fails when the session cannot take more.
	Push(event OutboundEvent) error
}

type set map[string]struct{}

// Registry maps users to their live sessions and sessions to the rooms they joined.
// It lives for the process lifetime only.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session                // session ID -> session
	byUser   map[string]set                    // user ID -> session IDs
	rooms    map[uuid.UUID]set                 // room ID -> joined session IDs
	joined   map[string]map[uuid.UUID]struct{} // session ID -> joined room IDs
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		byUser:   make(map[string]set),
		rooms:    make(map[uuid.UUID]set),
		joined:   make(map[string]map[uuid.UUID]struct{}),
	}
}

// Register records a session under its user. Registering the same session ID again replaces the handle.
func (r *Registry) Register(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.sessions[s.ID()]; ok && prev.UserID() != s.UserID() {
		r.detachUserLocked(prev.UserID(), s.ID())
	}

	r.sessions[s.ID()] = s
	if _, ok := r.byUser[s.UserID()]; !ok {
		r.byUser[s.UserID()] = make(set)
	}
	r.byUser[s.UserID()][s.ID()] = struct{}{}
}

// Unregister removes a session and every room subscription it held. Unknown sessions are ignored.
func (r *Registry) Unregister(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[s.ID()]
	if !ok {
		return
	}

	delete(r.sessions, s.ID())
	r.detachUserLocked(current.UserID(), s.ID())

	for roomID := range r.joined[s.ID()] {
		r.leaveLocked(s.ID(), roomID)
	}
	delete(r.joined, s.ID())
}

// SessionsFor returns a snapshot of the user's sessions; empty means offline.
func (r *Registry) SessionsFor(userID string) []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	out := make([]Session, 0, len(ids))
	for id := range ids {
		out = append(out, r.sessions[id])
	}

	return out
}

// IsOnline reports whether the user has at least one session.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byUser[userID]) > 0
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// PushToUser sends an event to every session of the user and reports how many accepted it.
// Failures of individual sessions are joined into err; the remaining sessions are still tried.
func (r *Registry) PushToUser(userID string, event OutboundEvent) (delivered int, err error) {
	var errs []error
	for _, s := range r.SessionsFor(userID) {
		if pushErr := s.Push(event); pushErr != nil {
			errs = append(errs, pushErr)

			continue
		}
		delivered++
	}

	return delivered, errors.Join(errs...)
}

// Join subscribes a registered session to a room's fan-out group. It is idempotent.
func (r *Registry) Join(s Session, roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; !ok {
		return
	}

	if _, ok := r.rooms[roomID]; !ok {
		r.rooms[roomID] = make(set)
	}
	r.rooms[roomID][s.ID()] = struct{}{}

	if _, ok := r.joined[s.ID()]; !ok {
		r.joined[s.ID()] = make(map[uuid.UUID]struct{})
	}
	r.joined[s.ID()][roomID] = struct{}{}
}

// Leave unsubscribes a session from a room. Leaving a room never joined is a no-op.
func (r *Registry) Leave(s Session, roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leaveLocked(s.ID(), roomID)
}

// IsJoined reports whether the session is subscribed to the room.
func (r *Registry) IsJoined(sessionID string, roomID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rooms[roomID][sessionID]

	return ok
}

// SessionsInRoom returns a snapshot of the sessions subscribed to the room.
func (r *Registry) SessionsInRoom(roomID uuid.UUID) []Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[roomID]
	out := make([]Session, 0, len(members))
	for id := range members {
		if s, ok := r.sessions[id]; ok {
			out = append(out, s)
		}
	}

	return out
}

// DropUserFromRoom unsubscribes every session of the user from the room.
func (r *Registry) DropUserFromRoom(userID string, roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.byUser[userID] {
		r.leaveLocked(id, roomID)
	}
}

// DropRoom removes the room's fan-out group entirely.
func (r *Registry) DropRoom(roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.rooms[roomID] {
		r.leaveLocked(id, roomID)
	}
	delete(r.rooms, roomID)
}

func (r *Registry) leaveLocked(sessionID string, roomID uuid.UUID) {
	if members, ok := r.rooms[roomID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}

	if rooms, ok := r.joined[sessionID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.joined, sessionID)
		}
	}
}

func (r *Registry) detachUserLocked(userID, sessionID string) {
	if ids, ok := r.byUser[userID]; ok {
		delete(ids, sessionID)
		if len(ids) == 0 {
			delete(r.byUser, userID)
		}
	}
}
