package usecase

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipUsecase decides who may read, write and change membership of a room.
type MembershipUsecase interface {
	// AssertMember returns the room header when userID participates in it.
	AssertMember(ctx context.Context, roomID uuid.UUID, userID string) (*entity.Room, error)

	// CheckAddParticipant validates adding userID to room without touching storage.
	CheckAddParticipant(room *entity.Room, userID string) error

	// CheckRemoveParticipant validates removing userID from room without touching storage.
	CheckRemoveParticipant(room *entity.Room, userID string) error

	// Invalidate forgets any cached header of the room.
	Invalidate(ctx context.Context, roomID uuid.UUID)
}
