package impl

import (
	"context"
	"log/slog"

	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/domain/service"
	"huddle/internal/errors"
	"huddle/internal/usecase"

	"github.com/google/uuid"
)

type membershipService struct {
	roomRepo  repository.RoomRepository
	roomCache service.RoomCache
	logger    *slog.Logger
}

// NewMembershipService creates the room membership authority.
func NewMembershipService(roomRepo repository.RoomRepository, roomCache service.RoomCache, logger *slog.Logger) usecase.MembershipUsecase {
	return &membershipService{
		roomRepo:  roomRepo,
		roomCache: roomCache,
		logger:    logger,
	}
}

// AssertMember returns the room header when userID participates in it
func (s *membershipService) AssertMember(ctx context.Context, roomID uuid.UUID, userID string) (*entity.Room, error) {
	room, err := s.loadRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !room.HasParticipant(userID) {
		return nil, domainerrors.ErrNotAMember
	}

	return room, nil
}

func (s *membershipService) CheckAddParticipant(room *entity.Room, userID string) error {
	if room.Kind == entity.RoomKindDirect {
		return domainerrors.ErrInvalidOperation.WithDetails("direct chat rooms cannot change participants")
	}
	if room.HasParticipant(userID) {
		return domainerrors.ErrDuplicateOrMissingParticipant.WithDetails("user is already a participant")
	}

	return nil
}

func (s *membershipService) CheckRemoveParticipant(room *entity.Room, userID string) error {
	if room.Kind == entity.RoomKindDirect {
		return domainerrors.ErrInvalidOperation.WithDetails("direct chat rooms cannot change participants")
	}
	if !room.HasParticipant(userID) {
		return domainerrors.ErrDuplicateOrMissingParticipant.WithDetails("user is not a participant")
	}
	if len(room.ParticipantIDs) <= 1 {
		return domainerrors.ErrInvalidOperation.WithDetails("a chat room must keep at least one participant")
	}

	return nil
}

func (s *membershipService) Invalidate(ctx context.Context, roomID uuid.UUID) {
	if err := s.roomCache.Invalidate(ctx, roomID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to invalidate cached room",
			slog.String("room_id", roomID.String()),
			slog.Any("error", err),
		)
	}
}

// loadRoom reads through the cache; cache failures fall back to the repository
func (s *membershipService) loadRoom(ctx context.Context, roomID uuid.UUID) (*entity.Room, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	room, ok, err := s.roomCache.Get(ctx, roomID)
	if err != nil {
		logger.Warn("Room cache read failed",
			slog.String("room_id", roomID.String()),
			slog.Any("error", err),
		)
	}
	if ok {
		return room, nil
	}

	room, err = s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	if err := s.roomCache.Set(ctx, room); err != nil {
		logger.Warn("Room cache write failed",
			slog.String("room_id", roomID.String()),
			slog.Any("error", err),
		)
	}

	return room, nil
}
