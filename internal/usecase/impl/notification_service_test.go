package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"huddle/config"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	mockRepo "huddle/internal/mocks/repository"
	"huddle/internal/realtime"
	"huddle/internal/realtime/realtimetest"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	registry         *realtime.Registry
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	registry := realtime.NewRegistry()
	cfg := &config.Config{
		Notification: config.NotificationConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}

	return notificationServiceFixtures{
		service:          NewNotificationService(cfg, testLogger(), notificationRepo, registry),
		notificationRepo: notificationRepo,
		registry:         registry,
	}
}

func TestNotificationService_CreateSocial_OnlineRecipientGetsPush(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	phone := realtimetest.NewSession("bob")
	laptop := realtimetest.NewSession("bob")
	fx.registry.Register(phone)
	fx.registry.Register(laptop)

	var stored *entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { stored = n }).
		Return(nil)

	ref := &entity.Reference{ID: "post-1", Kind: entity.ReferencePost}
	n, err := fx.service.CreateSocial(ctx, "bob", "alice", entity.TypeLike, "New like", "alice liked your post", ref)
	require.NoError(t, err)

	assert.Same(t, stored, n)
	assert.Equal(t, entity.CategorySocial, n.Category)
	assert.Equal(t, entity.TypeLike, n.Type)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.SenderID)
	assert.Equal(t, "alice", *n.SenderID)

	for _, s := range []*realtimetest.Session{phone, laptop} {
		events := s.EventsNamed(realtime.EventNotification)
		require.Len(t, events, 1)
		assert.Equal(t, n, events[0].Payload())
	}
}

func TestNotificationService_CreateSystem_OfflineRecipientOnlyPersists(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	other := realtimetest.NewSession("carol")
	fx.registry.Register(other)

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	n, err := fx.service.CreateSystem(ctx, "bob", "Maintenance", "Back soon")
	require.NoError(t, err)
	assert.Equal(t, entity.CategorySystem, n.Category)
	assert.Nil(t, n.SenderID)
	assert.Nil(t, n.Reference)
	assert.Empty(t, other.Events())
}

func TestNotificationService_CreateRoutine_ReferencesRoutine(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	session := realtimetest.NewSession("bob")
	fx.registry.Register(session)

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	n, err := fx.service.CreateRoutine(ctx, "bob", "routine-3", "Leg day", "Your routine starts in 10 minutes")
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryRoutine, n.Category)
	assert.Equal(t, entity.TypeRoutine, n.Type)
	assert.Nil(t, n.SenderID)
	assert.Equal(t, &entity.Reference{ID: "routine-3", Kind: entity.ReferenceRoutine}, n.Reference)
	assert.Len(t, session.EventsNamed(realtime.EventNotification), 1)
}

func TestNotificationService_Dispatch_PersistFailureSkipsPush(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	session := realtimetest.NewSession("bob")
	fx.registry.Register(session)

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("connection reset"))

	n, err := fx.service.CreateAchievement(ctx, "bob", "ach-1", "First 5k", "You ran 5k")
	require.Error(t, err)
	assert.Nil(t, n)
	assert.Empty(t, session.Events())
}

func TestNotificationService_Dispatch_RejectsIncompleteDraft(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Dispatch(context.Background(), entity.NewSystemNotification("", "title", "msg"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Dispatch(context.Background(), entity.NotificationDraft{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_Dispatch_PushFailureStillSucceeds(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	broken := realtimetest.NewSession("bob")
	broken.FailPushes(errors.New("send buffer full"))
	healthy := realtimetest.NewSession("bob")
	fx.registry.Register(broken)
	fx.registry.Register(healthy)

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CreateChallenge(ctx, "bob", "alice", entity.TypeChallengeInvite, "ch-1", "Invite", "Join my challenge")
	require.NoError(t, err)
	assert.Len(t, healthy.EventsNamed(realtime.EventNotification), 1)
}

func TestNotificationService_RoundTrip_ListReturnsCreatedFields(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	var stored []*entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			stored = append(stored, n)
			return nil
		})
	fx.notificationRepo.EXPECT().
		FindNotificationsByRecipient(ctx, "bob", 20, 0).
		RunAndReturn(func(context.Context, string, int, int) ([]*entity.Notification, int64, error) {
			return stored, int64(len(stored)), nil
		})

	ref := &entity.Reference{ID: "chat-9", Kind: entity.ReferenceChat}
	created, err := fx.service.CreateSocial(ctx, "bob", "alice", entity.TypeNewMessage, "New message", "New message in Runners", ref)
	require.NoError(t, err)

	page, err := fx.service.ListNotifications(ctx, "bob", 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, created.Title, page.Items[0].Title)
	assert.Equal(t, created.Message, page.Items[0].Message)
	assert.Equal(t, ref, page.Items[0].Reference)
}

func TestNotificationService_ListNotifications_ClampsLimit(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		FindNotificationsByRecipient(ctx, "bob", 100, 200).
		Return([]*entity.Notification{}, int64(0), nil)

	page, err := fx.service.ListNotifications(ctx, "bob", 3, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 3, page.Page)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("pushes the updated notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		session := realtimetest.NewSession("bob")
		fx.registry.Register(session)

		id := uuid.New()
		updated := &entity.Notification{ID: id, RecipientID: "bob", IsRead: true}
		fx.notificationRepo.EXPECT().MarkRead(ctx, id, "bob").Return(updated, nil)

		n, err := fx.service.MarkRead(ctx, id, "bob")
		require.NoError(t, err)
		assert.True(t, n.IsRead)

		events := session.EventsNamed(realtime.EventNotification)
		require.Len(t, events, 1)
		assert.Equal(t, updated, events[0].Payload())
	})

	t.Run("foreign or missing notification is not found", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.notificationRepo.EXPECT().
			MarkRead(ctx, id, "mallory").
			Return(nil, repository.ErrNotificationNotFound)

		_, err := fx.service.MarkRead(ctx, id, "mallory")
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}

func TestNotificationService_MarkAllRead_NoUnreadStillSignals(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	session := realtimetest.NewSession("bob")
	fx.registry.Register(session)

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, "bob").Return(int64(0), nil)

	updated, err := fx.service.MarkAllRead(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, updated)

	events := session.EventsNamed(realtime.EventNotifications)
	require.Len(t, events, 1)
	assert.Equal(t, realtime.StateAllRead, events[0].Payload())
}

func TestNotificationService_DeleteAllNotifications_Signals(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	session := realtimetest.NewSession("bob")
	fx.registry.Register(session)

	fx.notificationRepo.EXPECT().DeleteAllNotifications(ctx, "bob").Return(int64(4), nil)

	deleted, err := fx.service.DeleteAllNotifications(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	events := session.EventsNamed(realtime.EventNotifications)
	require.Len(t, events, 1)
	assert.Equal(t, realtime.StateAllDeleted, events[0].Payload())
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	session := realtimetest.NewSession("bob")
	fx.registry.Register(session)

	kept, missing := uuid.New(), uuid.New()
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, kept, "bob").Return(nil)
	fx.notificationRepo.EXPECT().DeleteNotification(ctx, missing, "bob").Return(repository.ErrNotificationNotFound)

	require.NoError(t, fx.service.DeleteNotification(ctx, kept, "bob"))
	assert.ErrorIs(t, fx.service.DeleteNotification(ctx, missing, "bob"), domainerrors.ErrNotificationNotFound)
	assert.Empty(t, session.Events())
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().CountUnread(ctx, "bob").Return(int64(7), nil)

	count, err := fx.service.UnreadCount(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
