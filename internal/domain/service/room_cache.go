package service

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomCache keeps room headers (kind, name, participants) close to the membership checks.
// Cached rooms never carry messages or read markers.
type RoomCache interface {
	// Get returns the cached room; ok is false on a miss.
	Get(ctx context.Context, roomID uuid.UUID) (room *entity.Room, ok bool, err error)

	// Set stores a room header.
	Set(ctx context.Context, room *entity.Room) error

	// Invalidate drops the cached entry after a membership change or deletion.
	Invalidate(ctx context.Context, roomID uuid.UUID) error
}
