package impl

import (
	"context"
	"testing"
	"time"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	mockRepo "huddle/internal/mocks/repository"
	mockUsecase "huddle/internal/mocks/usecase"
	"huddle/internal/realtime"
	"huddle/internal/realtime/realtimetest"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomServiceFixtures struct {
	service       usecase.RoomUsecase
	roomRepo      *mockRepo.MockRoomRepository
	challengeRepo *mockRepo.MockChallengeRepository
	membership    *mockUsecase.MockMembershipUsecase
	registry      *realtime.Registry
}

func createTestRoomService(t *testing.T) roomServiceFixtures {
	roomRepo := mockRepo.NewMockRoomRepository(t)
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	membership := mockUsecase.NewMockMembershipUsecase(t)
	registry := realtime.NewRegistry()

	service := NewRoomService(RoomServiceParams{
		Logger:        testLogger(),
		RoomRepo:      roomRepo,
		ChallengeRepo: challengeRepo,
		Membership:    membership,
		Registry:      registry,
	})

	return roomServiceFixtures{
		service:       service,
		roomRepo:      roomRepo,
		challengeRepo: challengeRepo,
		membership:    membership,
		registry:      registry,
	}
}

func TestRoomService_CreateDirect_ReturnsExisting(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	existing := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.roomRepo.EXPECT().FindDirectRoom(ctx, "bob", "alice").Return(existing, nil)

	room, err := fx.service.CreateDirect(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, room.ID)
}

func TestRoomService_CreateDirect_CreatesOnce(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()

	var created *entity.Room
	fx.roomRepo.EXPECT().FindDirectRoom(ctx, "alice", "bob").Return(nil, repository.ErrRoomNotFound).Once()
	fx.roomRepo.EXPECT().
		CreateRoom(ctx, mock.AnythingOfType("*entity.Room")).
		Run(func(_ context.Context, r *entity.Room) { created = r }).
		Return(nil).
		Once()

	first, err := fx.service.CreateDirect(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, entity.RoomKindDirect, first.Kind)
	assert.ElementsMatch(t, []string{"alice", "bob"}, first.ParticipantIDs)
	assert.Same(t, created, first)

	fx.roomRepo.EXPECT().FindDirectRoom(ctx, "bob", "alice").Return(created, nil).Once()

	second, err := fx.service.CreateDirect(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRoomService_CreateDirect_ConcurrentCreateResolvesToStored(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	winner := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.roomRepo.EXPECT().FindDirectRoom(ctx, "alice", "bob").Return(nil, repository.ErrRoomNotFound).Once()
	fx.roomRepo.EXPECT().CreateRoom(ctx, mock.Anything).Return(repository.ErrDirectRoomExists)
	fx.roomRepo.EXPECT().FindDirectRoom(ctx, "alice", "bob").Return(winner, nil).Once()

	room, err := fx.service.CreateDirect(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, room.ID)
}

func TestRoomService_CreateDirect_SelfIsInvalid(t *testing.T) {
	fx := createTestRoomService(t)

	_, err := fx.service.CreateDirect(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOperation)
}

func TestRoomService_CreateGroup(t *testing.T) {
	t.Run("creator is added and duplicates dropped", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()

		fx.roomRepo.EXPECT().CreateRoom(ctx, mock.AnythingOfType("*entity.Room")).Return(nil)

		room, err := fx.service.CreateGroup(ctx, "alice", " Runners ", []string{"bob", "bob", " ", "alice"})
		require.NoError(t, err)
		assert.Equal(t, "Runners", room.Name)
		assert.Equal(t, entity.RoomKindGroup, room.Kind)
		assert.Equal(t, []string{"alice", "bob"}, room.ParticipantIDs)
	})

	t.Run("needs two distinct participants", func(t *testing.T) {
		fx := createTestRoomService(t)

		_, err := fx.service.CreateGroup(context.Background(), "alice", "Solo", []string{"alice"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("needs a name", func(t *testing.T) {
		fx := createTestRoomService(t)

		_, err := fx.service.CreateGroup(context.Background(), "alice", "  ", []string{"bob"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRoomService_CreateChallenge(t *testing.T) {
	t.Run("named after the challenge", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		challengeID := uuid.New()

		fx.challengeRepo.EXPECT().FindChallengeTitle(ctx, challengeID).Return("30 day plank", nil)
		fx.roomRepo.EXPECT().CreateRoom(ctx, mock.Anything).Return(nil)

		room, err := fx.service.CreateChallenge(ctx, "alice", challengeID, []string{"bob"})
		require.NoError(t, err)
		assert.Equal(t, "30 day plank chat", room.Name)
		assert.Equal(t, entity.RoomKindChallenge, room.Kind)
		require.NotNil(t, room.ChallengeID)
		assert.Equal(t, challengeID, *room.ChallengeID)
	})

	t.Run("unknown challenge", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		challengeID := uuid.New()

		fx.challengeRepo.EXPECT().FindChallengeTitle(ctx, challengeID).Return("", repository.ErrChallengeNotFound)

		_, err := fx.service.CreateChallenge(ctx, "alice", challengeID, []string{"bob"})
		assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
	})
}

func TestRoomService_GetRoom_LoadsHistory(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob")
	messages := []entity.Message{{ID: uuid.New(), RoomID: room.ID, AuthorID: "bob", Content: "yo"}}
	markers := map[string]time.Time{"alice": time.Now()}

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.roomRepo.EXPECT().FindRoomByID(ctx, room.ID).Return(&entity.Room{ID: room.ID, Kind: room.Kind}, nil)
	fx.roomRepo.EXPECT().FindMessages(ctx, room.ID, repository.MessageCursor{Limit: 50}).Return(messages, nil)
	fx.roomRepo.EXPECT().FindReadMarkers(ctx, room.ID).Return(markers, nil)

	got, err := fx.service.GetRoom(ctx, "alice", room.ID)
	require.NoError(t, err)
	assert.Equal(t, messages, got.Messages)
	assert.Equal(t, markers, got.LastRead)
}

func TestRoomService_ListMessages_DefaultsLimit(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob")
	before := uuid.New()

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.roomRepo.EXPECT().
		FindMessages(ctx, room.ID, repository.MessageCursor{Before: &before, Limit: 50}).
		Return([]entity.Message{}, nil)

	_, err := fx.service.ListMessages(ctx, "alice", room.ID, repository.MessageCursor{Before: &before, Limit: 1000})
	require.NoError(t, err)
}

func TestRoomService_AddParticipant(t *testing.T) {
	t.Run("direct room stays immutable", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		room := createTestRoom(entity.RoomKindDirect, "alice", "bob")

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
		fx.membership.EXPECT().
			CheckAddParticipant(room, "carol").
			Return(domainerrors.ErrInvalidOperation.WithDetails("direct chat rooms cannot change participants"))

		_, err := fx.service.AddParticipant(ctx, "alice", room.ID, "carol")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOperation)
	})

	t.Run("group gains participant", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		room := createTestRoom(entity.RoomKindGroup, "alice", "bob")
		updated := createTestRoom(entity.RoomKindGroup, "alice", "bob", "carol")
		updated.ID = room.ID

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
		fx.membership.EXPECT().CheckAddParticipant(room, "carol").Return(nil)
		fx.roomRepo.EXPECT().AddParticipant(ctx, room.ID, "carol").Return(nil)
		fx.membership.EXPECT().Invalidate(ctx, room.ID).Return()
		fx.roomRepo.EXPECT().FindRoomByID(ctx, room.ID).Return(updated, nil)

		got, err := fx.service.AddParticipant(ctx, "alice", room.ID, "carol")
		require.NoError(t, err)
		assert.Contains(t, got.ParticipantIDs, "carol")
	})

	t.Run("concurrent change maps to conflict", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		room := createTestRoom(entity.RoomKindGroup, "alice", "bob")

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
		fx.membership.EXPECT().CheckAddParticipant(room, "carol").Return(nil)
		fx.roomRepo.EXPECT().AddParticipant(ctx, room.ID, "carol").Return(repository.ErrParticipantConflict)

		_, err := fx.service.AddParticipant(ctx, "alice", room.ID, "carol")
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateOrMissingParticipant)
	})
}

func TestRoomService_RemoveParticipant_DropsSubscriptions(t *testing.T) {
	fx := createTestRoomService(t)
	ctx := context.Background()
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob", "carol")

	carol := realtimetest.NewSession("carol")
	fx.registry.Register(carol)
	fx.registry.Join(carol, room.ID)

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.membership.EXPECT().CheckRemoveParticipant(room, "carol").Return(nil)
	fx.roomRepo.EXPECT().RemoveParticipant(ctx, room.ID, "carol").Return(nil)
	fx.membership.EXPECT().Invalidate(ctx, room.ID).Return()
	fx.roomRepo.EXPECT().FindRoomByID(ctx, room.ID).Return(createTestRoom(entity.RoomKindGroup, "alice", "bob"), nil)

	got, err := fx.service.RemoveParticipant(ctx, "alice", room.ID, "carol")
	require.NoError(t, err)
	assert.NotContains(t, got.ParticipantIDs, "carol")
	assert.False(t, fx.registry.IsJoined(carol.ID(), room.ID))
}

func TestRoomService_DeleteRoom(t *testing.T) {
	t.Run("drops fan-out group", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		room := createTestRoom(entity.RoomKindGroup, "alice", "bob")
		bob := realtimetest.NewSession("bob")
		fx.registry.Register(bob)
		fx.registry.Join(bob, room.ID)

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
		fx.roomRepo.EXPECT().DeleteRoom(ctx, room.ID).Return(nil)
		fx.membership.EXPECT().Invalidate(ctx, room.ID).Return()

		require.NoError(t, fx.service.DeleteRoom(ctx, "alice", room.ID))
		assert.Empty(t, fx.registry.SessionsInRoom(room.ID))
	})

	t.Run("non member cannot delete", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		roomID := uuid.New()

		fx.membership.EXPECT().AssertMember(ctx, roomID, "mallory").Return(nil, domainerrors.ErrNotAMember)

		assert.ErrorIs(t, fx.service.DeleteRoom(ctx, "mallory", roomID), domainerrors.ErrNotAMember)
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		fx := createTestRoomService(t)
		ctx := context.Background()
		room := createTestRoom(entity.RoomKindGroup, "alice", "bob")

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
		fx.roomRepo.EXPECT().DeleteRoom(ctx, room.ID).Return(errors.New("deadlock"))

		err := fx.service.DeleteRoom(ctx, "alice", room.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deadlock")
	})
}
