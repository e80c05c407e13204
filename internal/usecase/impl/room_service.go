package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/errors"
	"huddle/internal/realtime"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const (
	directRoomName       = "1:1 chat"
	challengeRoomPattern = "%s chat"
	roomDetailMessages   = 50
	maxHistoryPageSize   = 100
)

// RoomServiceParams holds dependencies for the room service, injected by Fx.
type RoomServiceParams struct {
	fx.In

	Logger        *slog.Logger
	RoomRepo      repository.RoomRepository
	ChallengeRepo repository.ChallengeRepository
	Membership    usecase.MembershipUsecase
	Registry      *realtime.Registry
}

type roomService struct {
	logger        *slog.Logger
	roomRepo      repository.RoomRepository
	challengeRepo repository.ChallengeRepository
	membership    usecase.MembershipUsecase
	registry      *realtime.Registry
	now           func() time.Time
}

// NewRoomService creates the REST-facing room service
func NewRoomService(params RoomServiceParams) usecase.RoomUsecase {
	return &roomService{
		logger:        params.Logger,
		roomRepo:      params.RoomRepo,
		challengeRepo: params.ChallengeRepo,
		membership:    params.Membership,
		registry:      params.Registry,
		now:           time.Now,
	}
}

// CreateDirect is find-or-create; a concurrent creation of the same pair resolves to the stored room.
func (s *roomService) CreateDirect(ctx context.Context, userID, otherUserID string) (*entity.Room, error) {
	if userID == otherUserID {
		return nil, domainerrors.ErrInvalidOperation.WithDetails("cannot open a direct chat with yourself")
	}

	room, err := s.roomRepo.FindDirectRoom(ctx, userID, otherUserID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, repository.ErrRoomNotFound) {
		return nil, errors.Wrap(err, "failed to find direct room")
	}

	room, err = s.newRoom(entity.RoomKindDirect, directRoomName, []string{userID, otherUserID}, nil)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.CreateRoom(ctx, room); err != nil {
		if !errors.Is(err, repository.ErrDirectRoomExists) {
			return nil, errors.Wrap(err, "failed to create direct room")
		}

		existing, findErr := s.roomRepo.FindDirectRoom(ctx, userID, otherUserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find direct room after conflict")
		}

		return existing, nil
	}

	return room, nil
}

func (s *roomService) CreateGroup(ctx context.Context, userID, name string, participantIDs []string) (*entity.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("group name is required")
	}

	participants, err := participantSet(userID, participantIDs)
	if err != nil {
		return nil, err
	}

	room, err := s.newRoom(entity.RoomKindGroup, name, participants, nil)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.CreateRoom(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to create group room")
	}

	return room, nil
}

func (s *roomService) CreateChallenge(ctx context.Context, userID string, challengeID uuid.UUID, participantIDs []string) (*entity.Room, error) {
	title, err := s.challengeRepo.FindChallengeTitle(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge")
	}

	participants, err := participantSet(userID, participantIDs)
	if err != nil {
		return nil, err
	}

	room, err := s.newRoom(entity.RoomKindChallenge, fmt.Sprintf(challengeRoomPattern, title), participants, &challengeID)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.CreateRoom(ctx, room); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge room")
	}

	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, userID string) ([]*entity.Room, error) {
	rooms, err := s.roomRepo.FindRoomsByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return rooms, nil
}

func (s *roomService) GetRoom(ctx context.Context, userID string, roomID uuid.UUID) (*entity.Room, error) {
	if _, err := s.membership.AssertMember(ctx, roomID, userID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room")
	}

	messages, err := s.roomRepo.FindMessages(ctx, roomID, repository.MessageCursor{Limit: roomDetailMessages})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	markers, err := s.roomRepo.FindReadMarkers(ctx, roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load read markers")
	}

	room.Messages = messages
	room.LastRead = markers

	return room, nil
}

func (s *roomService) ListMessages(ctx context.Context, userID string, roomID uuid.UUID, cursor repository.MessageCursor) ([]entity.Message, error) {
	if _, err := s.membership.AssertMember(ctx, roomID, userID); err != nil {
		return nil, err
	}

	if cursor.Limit <= 0 || cursor.Limit > maxHistoryPageSize {
		cursor.Limit = roomDetailMessages
	}

	messages, err := s.roomRepo.FindMessages(ctx, roomID, cursor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load messages")
	}

	return messages, nil
}

// AddParticipant checks the membership rules before any write
func (s *roomService) AddParticipant(ctx context.Context, userID string, roomID uuid.UUID, targetID string) (*entity.Room, error) {
	room, err := s.membership.AssertMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.membership.CheckAddParticipant(room, targetID); err != nil {
		return nil, err
	}

	if err := s.roomRepo.AddParticipant(ctx, roomID, targetID); err != nil {
		return nil, s.mapMembershipWriteError(err)
	}
	s.membership.Invalidate(ctx, roomID)

	return s.reload(ctx, roomID)
}

func (s *roomService) RemoveParticipant(ctx context.Context, userID string, roomID uuid.UUID, targetID string) (*entity.Room, error) {
	room, err := s.membership.AssertMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.membership.CheckRemoveParticipant(room, targetID); err != nil {
		return nil, err
	}

	if err := s.roomRepo.RemoveParticipant(ctx, roomID, targetID); err != nil {
		return nil, s.mapMembershipWriteError(err)
	}
	s.membership.Invalidate(ctx, roomID)
	s.registry.DropUserFromRoom(targetID, roomID)

	return s.reload(ctx, roomID)
}

func (s *roomService) DeleteRoom(ctx context.Context, userID string, roomID uuid.UUID) error {
	if _, err := s.membership.AssertMember(ctx, roomID, userID); err != nil {
		return err
	}

	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrRoomNotFound
		}

		return errors.Wrap(err, "failed to delete room")
	}
	s.membership.Invalidate(ctx, roomID)
	s.registry.DropRoom(roomID)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Chat room deleted",
		slog.String("room_id", roomID.String()),
		slog.String("user_id", userID),
	)

	return nil
}

func (s *roomService) reload(ctx context.Context, roomID uuid.UUID) (*entity.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to reload room")
	}

	return room, nil
}

func (s *roomService) mapMembershipWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRoomNotFound):
		return domainerrors.ErrRoomNotFound
	case errors.Is(err, repository.ErrParticipantConflict):
		return domainerrors.ErrDuplicateOrMissingParticipant
	default:
		return errors.Wrap(err, "failed to update participants")
	}
}

func (s *roomService) newRoom(kind entity.RoomKind, name string, participants []string, challengeID *uuid.UUID) (*entity.Room, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := s.now()

	return &entity.Room{
		ID:             id,
		Kind:           kind,
		Name:           name,
		ParticipantIDs: participants,
		ChallengeID:    challengeID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// participantSet adds the creator, drops blanks and duplicates, and enforces the creation minimum
func participantSet(creatorID string, participantIDs []string) ([]string, error) {
	ids := lo.Uniq(lo.Compact(append([]string{creatorID}, lo.Map(participantIDs, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})...)))

	if len(ids) < entity.MinGroupParticipants {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("a chat room needs at least %d distinct participants", entity.MinGroupParticipants),
		)
	}

	return ids, nil
}
