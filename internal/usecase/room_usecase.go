package usecase

import (
	"context"

	"huddle/internal/domain/entity"
	"huddle/internal/domain/repository"

	"github.com/google/uuid"
)

// RoomUsecase defines the REST-facing chat room operations.
type RoomUsecase interface {
	// CreateDirect returns the DIRECT room between the two users, creating it on first use.
	CreateDirect(ctx context.Context, userID, otherUserID string) (*entity.Room, error)

	// CreateGroup creates a GROUP room; the creator is always a participant.
	CreateGroup(ctx context.Context, userID, name string, participantIDs []string) (*entity.Room, error)

	// CreateChallenge creates a CHALLENGE room named after the challenge.
	CreateChallenge(ctx context.Context, userID string, challengeID uuid.UUID, participantIDs []string) (*entity.Room, error)

	// ListRooms lists the user's rooms, most recently updated first.
	ListRooms(ctx context.Context, userID string) ([]*entity.Room, error)

	// GetRoom returns a room with its recent messages and read markers.
	GetRoom(ctx context.Context, userID string, roomID uuid.UUID) (*entity.Room, error)

	// ListMessages pages backwards through a room's history.
	ListMessages(ctx context.Context, userID string, roomID uuid.UUID, cursor repository.MessageCursor) ([]entity.Message, error)

	// AddParticipant adds targetID to a GROUP or CHALLENGE room.
	AddParticipant(ctx context.Context, userID string, roomID uuid.UUID, targetID string) (*entity.Room, error)

	// RemoveParticipant removes targetID from a GROUP or CHALLENGE room.
	RemoveParticipant(ctx context.Context, userID string, roomID uuid.UUID, targetID string) (*entity.Room, error)

	// DeleteRoom deletes a room the user participates in.
	DeleteRoom(ctx context.Context, userID string, roomID uuid.UUID) error
}
