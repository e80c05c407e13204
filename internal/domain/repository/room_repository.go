// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for room persistence.
var (
	// ErrRoomNotFound is returned when a room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrDirectRoomExists is returned when a DIRECT room for the same user pair was created concurrently.
	ErrDirectRoomExists = errors.New("direct room already exists")
	// ErrParticipantConflict is returned when a guarded membership update matched no row.
	ErrParticipantConflict = errors.New("participant set changed concurrently")
	// ErrChallengeNotFound is returned when a referenced challenge does not exist.
	ErrChallengeNotFound = errors.New("challenge not found")
)

// MessageCursor pages backwards through a room's history.
type MessageCursor struct {
	Before *uuid.UUID // Return messages strictly older than this message; nil starts from the newest.
	Limit  int
}

// RoomRepository defines the persistence operations for chat rooms and their messages.
type RoomRepository interface {
	// CreateRoom persists a new room. DIRECT rooms are unique per user pair.
	CreateRoom(ctx context.Context, room *entity.Room) error

	// FindRoomByID retrieves a room without its messages.
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)

	// FindDirectRoom retrieves the DIRECT room between two users.
	FindDirectRoom(ctx context.Context, userA, userB string) (*entity.Room, error)

	// FindRoomsByParticipant lists the rooms a user belongs to, most recently updated first.
	FindRoomsByParticipant(ctx context.Context, userID string) ([]*entity.Room, error)

	// InsertMessage stores a message. Callers pair it with TouchRoom inside a transaction.
	InsertMessage(ctx context.Context, message *entity.Message) error

	// TouchRoom sets the room's updated_at.
	TouchRoom(ctx context.Context, id uuid.UUID, at time.Time) error

	// FindMessages returns a page of messages in chronological order.
	FindMessages(ctx context.Context, roomID uuid.UUID, cursor MessageCursor) ([]entity.Message, error)

	// FindReadMarkers returns each participant's last-read timestamp.
	FindReadMarkers(ctx context.Context, roomID uuid.UUID) (map[string]time.Time, error)

	// UpsertReadMarker sets a participant's last-read timestamp.
	UpsertReadMarker(ctx context.Context, roomID uuid.UUID, userID string, at time.Time) error

	// AddParticipant appends userID when it is not already present.
	AddParticipant(ctx context.Context, roomID uuid.UUID, userID string) error

	// RemoveParticipant removes userID while at least one other participant remains.
	RemoveParticipant(ctx context.Context, roomID uuid.UUID, userID string) error

	// DeleteRoom removes the room with its messages and read markers.
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

// ChallengeRepository reads challenges owned by the challenge service.
type ChallengeRepository interface {
	// FindChallengeTitle returns the title of an existing challenge.
	FindChallengeTitle(ctx context.Context, id uuid.UUID) (string, error)
}
