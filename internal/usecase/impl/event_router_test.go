package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
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

type eventRouterFixtures struct {
	router        usecase.EventRouter
	registry      *realtime.Registry
	membership    *mockUsecase.MockMembershipUsecase
	roomRepo      *mockRepo.MockRoomRepository
	txManager     *mockRepo.MockTransactionManager
	txFactory     *mockRepo.MockRepositoryFactory
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestEventRouter(t *testing.T) eventRouterFixtures {
	registry := realtime.NewRegistry()
	membership := mockUsecase.NewMockMembershipUsecase(t)
	roomRepo := mockRepo.NewMockRoomRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	router := NewEventRouter(EventRouterParams{
		Logger:        testLogger(),
		Registry:      registry,
		Membership:    membership,
		RoomRepo:      roomRepo,
		TxManager:     txManager,
		Notifications: notifications,
	})

	return eventRouterFixtures{
		router:        router,
		registry:      registry,
		membership:    membership,
		roomRepo:      roomRepo,
		txManager:     txManager,
		txFactory:     txFactory,
		notifications: notifications,
	}
}

// expectTransaction runs the transactional callback against the shared room repository mock.
func (f eventRouterFixtures) expectTransaction(ctx context.Context) {
	f.txFactory.EXPECT().NewRoomRepository().Return(f.roomRepo).Maybe()
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.txFactory)
		})
}

func (f eventRouterFixtures) connect(userID string) *realtimetest.Session {
	s := realtimetest.NewSession(userID)
	f.router.Connect(s)

	return s
}

func TestEventRouter_ConnectDisconnect(t *testing.T) {
	fx := createTestEventRouter(t)

	s := fx.connect("alice")
	assert.True(t, fx.registry.IsOnline("alice"))

	fx.router.Disconnect(s)
	assert.False(t, fx.registry.IsOnline("alice"))
	assert.Zero(t, fx.registry.Count())
}

func TestEventRouter_DisconnectLogsConnectionLength(t *testing.T) {
	var buf bytes.Buffer
	connectedAt := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)

	router := &eventRouter{
		logger:   slog.New(slog.NewJSONHandler(&buf, nil)),
		registry: realtime.NewRegistry(),
		now:      func() time.Time { return connectedAt.Add(90 * time.Second) },
	}

	s := realtimetest.NewSessionAt("alice", connectedAt)
	router.Connect(s)
	buf.Reset()
	router.Disconnect(s)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Session disconnected", entry["msg"])
	assert.EqualValues(t, (90 * time.Second).Nanoseconds(), entry["connected_for"])
}

func TestEventRouter_JoinChat(t *testing.T) {
	t.Run("member joins the fan-out group", func(t *testing.T) {
		fx := createTestEventRouter(t)
		ctx := context.Background()
		alice := fx.connect("alice")
		room := createTestRoom(entity.RoomKindGroup, "alice", "bob")

		fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)

		ack := fx.router.Handle(ctx, alice, realtime.JoinChat{ChatID: room.ID.String()})
		assert.True(t, ack.OK())
		assert.True(t, fx.registry.IsJoined(alice.ID(), room.ID))
	})

	t.Run("non member is rejected without subscribing", func(t *testing.T) {
		fx := createTestEventRouter(t)
		ctx := context.Background()
		mallory := fx.connect("mallory")
		roomID := uuid.New()

		fx.membership.EXPECT().AssertMember(ctx, roomID, "mallory").Return(nil, domainerrors.ErrNotAMember)

		ack := fx.router.Handle(ctx, mallory, realtime.JoinChat{ChatID: roomID.String()})
		assert.False(t, ack.OK())
		assert.Equal(t, "NOT_A_PARTICIPANT", ack.Code)
		assert.False(t, fx.registry.IsJoined(mallory.ID(), roomID))
		assert.True(t, fx.registry.IsOnline("mallory"))
	})

	t.Run("malformed id is an unknown room", func(t *testing.T) {
		fx := createTestEventRouter(t)
		alice := fx.connect("alice")

		ack := fx.router.Handle(context.Background(), alice, realtime.JoinChat{ChatID: "not-a-uuid"})
		assert.Equal(t, "CHAT_NOT_FOUND", ack.Code)
	})
}

func TestEventRouter_LeaveChat_AlwaysSucceeds(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	roomID := uuid.New()
	fx.registry.Join(alice, roomID)

	assert.True(t, fx.router.Handle(ctx, alice, realtime.LeaveChat{ChatID: roomID.String()}).OK())
	assert.False(t, fx.registry.IsJoined(alice.ID(), roomID))

	assert.True(t, fx.router.Handle(ctx, alice, realtime.LeaveChat{ChatID: uuid.NewString()}).OK())
	assert.True(t, fx.router.Handle(ctx, alice, realtime.LeaveChat{ChatID: "garbage"}).OK())
}

func TestEventRouter_SendMessage_MixedOnlineOffline(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()

	alice := fx.connect("alice")
	bobPhone := fx.connect("bob")
	bobLaptop := fx.connect("bob")
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob", "carol")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.expectTransaction(ctx)

	var inserted *entity.Message
	fx.roomRepo.EXPECT().
		InsertMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(_ context.Context, m *entity.Message) { inserted = m }).
		Return(nil)
	fx.roomRepo.EXPECT().TouchRoom(ctx, room.ID, mock.AnythingOfType("time.Time")).Return(nil)

	fx.notifications.EXPECT().
		CreateSocial(ctx, "carol", "alice", entity.TypeNewMessage, "New message", "New message in Morning runners",
			&entity.Reference{ID: room.ID.String(), Kind: entity.ReferenceChat}).
		Return(&entity.Notification{}, nil).
		Once()

	ack := fx.router.Handle(ctx, alice, realtime.SendMessage{ChatID: room.ID.String(), Content: "hi", Type: entity.MessageKindText})
	require.True(t, ack.OK(), "ack: %+v", ack)

	msg, ok := ack.Message.(entity.Message)
	require.True(t, ok)
	require.NotNil(t, inserted)
	assert.Equal(t, inserted.ID, msg.ID)
	assert.Equal(t, "alice", msg.AuthorID)
	assert.Equal(t, "hi", msg.Content)

	for _, s := range []*realtimetest.Session{bobPhone, bobLaptop} {
		events := s.EventsNamed(realtime.EventNewMessage)
		require.Len(t, events, 1)
		assert.Equal(t, realtime.NewMessage{ChatID: room.ID, Message: msg}, events[0])
	}
	assert.Empty(t, alice.Events())
}

func TestEventRouter_SendMessage_PreservesCallOrder(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()

	alice := fx.connect("alice")
	aliceTablet := fx.connect("alice")
	bob := fx.connect("bob")
	room := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.expectTransaction(ctx)

	var persisted []string
	fx.roomRepo.EXPECT().
		InsertMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(_ context.Context, m *entity.Message) { persisted = append(persisted, m.Content) }).
		Return(nil)
	fx.roomRepo.EXPECT().TouchRoom(ctx, room.ID, mock.Anything).Return(nil)

	const count = 20
	sent := make([]string, 0, count)
	for i := range count {
		content := fmt.Sprintf("set %d done", i)
		sent = append(sent, content)

		ack := fx.router.Handle(ctx, alice, realtime.SendMessage{ChatID: room.ID.String(), Content: content})
		require.True(t, ack.OK(), "ack: %+v", ack)
	}

	assert.Equal(t, sent, persisted)

	received := bob.EventsNamed(realtime.EventNewMessage)
	require.Len(t, received, count)
	for i, e := range received {
		assert.Equal(t, sent[i], e.(realtime.NewMessage).Message.Content)
	}

	assert.Empty(t, alice.Events())
	assert.Empty(t, aliceTablet.Events())
}

func TestEventRouter_SendMessage_AllOfflineGetNotifications(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob", "carol")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.expectTransaction(ctx)
	fx.roomRepo.EXPECT().InsertMessage(ctx, mock.Anything).Return(nil)
	fx.roomRepo.EXPECT().TouchRoom(ctx, room.ID, mock.Anything).Return(nil)

	for _, recipient := range []string{"bob", "carol"} {
		fx.notifications.EXPECT().
			CreateSocial(ctx, recipient, "alice", entity.TypeNewMessage, mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.Notification{}, nil).
			Once()
	}

	ack := fx.router.Handle(ctx, alice, realtime.SendMessage{ChatID: room.ID.String(), Content: "anyone?"})
	require.True(t, ack.OK())
	assert.Equal(t, entity.MessageKindText, ack.Message.(entity.Message).Kind)
}

func TestEventRouter_SendMessage_PersistFailureAbortsFanOut(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	bob := fx.connect("bob")
	room := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.expectTransaction(ctx)
	fx.roomRepo.EXPECT().InsertMessage(ctx, mock.Anything).Return(errors.New("disk full"))

	ack := fx.router.Handle(ctx, alice, realtime.SendMessage{ChatID: room.ID.String(), Content: "hi"})
	assert.False(t, ack.OK())
	assert.Equal(t, "INTERNAL_ERROR", ack.Code)
	assert.Empty(t, bob.Events())
}

func TestEventRouter_SendMessage_NotificationFailureIsSwallowed(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	room := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.expectTransaction(ctx)
	fx.roomRepo.EXPECT().InsertMessage(ctx, mock.Anything).Return(nil)
	fx.roomRepo.EXPECT().TouchRoom(ctx, room.ID, mock.Anything).Return(nil)
	fx.notifications.EXPECT().
		CreateSocial(ctx, "bob", "alice", entity.TypeNewMessage, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db unavailable"))

	ack := fx.router.Handle(ctx, alice, realtime.SendMessage{ChatID: room.ID.String(), Content: "hi"})
	assert.True(t, ack.OK())
}

func TestEventRouter_SendMessage_Validation(t *testing.T) {
	fileURL := "https://cdn.example.com/a.png"
	badURL := "not a url"

	tests := []struct {
		name  string
		event realtime.SendMessage
	}{
		{"missing content and file", realtime.SendMessage{ChatID: uuid.NewString()}},
		{"unknown kind", realtime.SendMessage{ChatID: uuid.NewString(), Content: "x", Type: "VIDEO"}},
		{"bad file url", realtime.SendMessage{ChatID: uuid.NewString(), Type: entity.MessageKindFile, FileURL: &badURL}},
		{"too long", realtime.SendMessage{ChatID: uuid.NewString(), Content: strings.Repeat("a", 4001)}},
		{"missing chat", realtime.SendMessage{Content: "x", FileURL: &fileURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEventRouter(t)
			alice := fx.connect("alice")

			ack := fx.router.Handle(context.Background(), alice, tt.event)
			assert.False(t, ack.OK())
			assert.Equal(t, "VALIDATION_FAILED", ack.Code)
		})
	}
}

func TestEventRouter_SendMessage_NonMemberRejected(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	mallory := fx.connect("mallory")
	roomID := uuid.New()

	fx.membership.EXPECT().AssertMember(ctx, roomID, "mallory").Return(nil, domainerrors.ErrNotAMember)

	ack := fx.router.Handle(ctx, mallory, realtime.SendMessage{ChatID: roomID.String(), Content: "hi"})
	assert.Equal(t, realtime.AckError, ack.Status)
	assert.Equal(t, "NOT_A_PARTICIPANT", ack.Code)
}

func TestEventRouter_Typing_BestEffort(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	bob := fx.connect("bob")
	broken := fx.connect("carol")
	broken.FailPushes(errors.New("send buffer full"))
	room := createTestRoom(entity.RoomKindGroup, "alice", "bob", "carol", "dave")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)

	ack := fx.router.Handle(ctx, alice, realtime.Typing{ChatID: room.ID.String(), IsTyping: true})
	assert.True(t, ack.OK())

	events := bob.EventsNamed(realtime.EventUserTyping)
	require.Len(t, events, 1)
	assert.Equal(t, realtime.UserTyping{ChatID: room.ID, UserID: "alice", IsTyping: true}, events[0])
	assert.Empty(t, alice.Events())
}

func TestEventRouter_MarkAsRead(t *testing.T) {
	fx := createTestEventRouter(t)
	ctx := context.Background()
	alice := fx.connect("alice")
	bob := fx.connect("bob")
	room := createTestRoom(entity.RoomKindDirect, "alice", "bob")

	fx.membership.EXPECT().AssertMember(ctx, room.ID, "alice").Return(room, nil)
	fx.roomRepo.EXPECT().
		UpsertReadMarker(ctx, room.ID, "alice", mock.MatchedBy(func(at time.Time) bool { return !at.IsZero() })).
		Return(nil)

	ack := fx.router.Handle(ctx, alice, realtime.MarkAsRead{ChatID: room.ID.String()})
	assert.True(t, ack.OK())
	assert.Empty(t, bob.Events())
}
