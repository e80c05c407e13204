package impl

import (
	"context"
	"log/slog"
	"time"

	"huddle/config"
	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/errors"
	"huddle/internal/realtime"
	"huddle/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	registry         *realtime.Registry
	defaultPageSize  int
	maxPageSize      int
	now              func() time.Time
}

// NewNotificationService creates the notification dispatcher
func NewNotificationService(
	cfg *config.Config,
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	registry *realtime.Registry,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		registry:         registry,
		defaultPageSize:  cfg.Notification.DefaultPageSize,
		maxPageSize:      cfg.Notification.MaxPageSize,
		now:              time.Now,
	}
}

// Dispatch persists the draft first; the push happens only after the record is durable.
func (s *notificationService) Dispatch(ctx context.Context, draft entity.NotificationDraft) (*entity.Notification, error) {
	if !draft.Complete() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notification requires a recipient and a title")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	notification := draft.Build(id, s.now())
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	s.push(ctx, notification.RecipientID, realtime.NotificationPushed{Notification: notification})

	return notification, nil
}

func (s *notificationService) CreateSocial(ctx context.Context, recipientID, senderID string, typ entity.NotificationType, title, message string, ref *entity.Reference) (*entity.Notification, error) {
	return s.Dispatch(ctx, entity.NewSocialNotification(recipientID, senderID, typ, title, message, ref))
}

func (s *notificationService) CreateChallenge(ctx context.Context, recipientID, senderID string, typ entity.NotificationType, challengeID, title, message string) (*entity.Notification, error) {
	return s.Dispatch(ctx, entity.NewChallengeNotification(recipientID, senderID, typ, challengeID, title, message))
}

func (s *notificationService) CreateAchievement(ctx context.Context, recipientID, achievementID, title, message string) (*entity.Notification, error) {
	return s.Dispatch(ctx, entity.NewAchievementNotification(recipientID, achievementID, title, message))
}

func (s *notificationService) CreateRoutine(ctx context.Context, recipientID, routineID, title, message string) (*entity.Notification, error) {
	return s.Dispatch(ctx, entity.NewRoutineNotification(recipientID, routineID, title, message))
}

func (s *notificationService) CreateSystem(ctx context.Context, recipientID, title, message string) (*entity.Notification, error) {
	return s.Dispatch(ctx, entity.NewSystemNotification(recipientID, title, message))
}

// ListNotifications clamps page and limit before querying
func (s *notificationService) ListNotifications(ctx context.Context, recipientID string, page, limit int) (*entity.NotificationPage, error) {
	page = max(page, 1)
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	limit = min(limit, s.maxPageSize)

	items, total, err := s.notificationRepo.FindNotificationsByRecipient(ctx, recipientID, limit, (page-1)*limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &entity.NotificationPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID, recipientID string) (*entity.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, id, recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to mark notification as read")
	}

	s.push(ctx, recipientID, realtime.NotificationPushed{Notification: notification})

	return notification, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications as read")
	}

	s.push(ctx, recipientID, realtime.NotificationsChanged{State: realtime.StateAllRead})

	return updated, nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id uuid.UUID, recipientID string) error {
	if err := s.notificationRepo.DeleteNotification(ctx, id, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

func (s *notificationService) DeleteAllNotifications(ctx context.Context, recipientID string) (int64, error) {
	deleted, err := s.notificationRepo.DeleteAllNotifications(ctx, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete notifications")
	}

	s.push(ctx, recipientID, realtime.NotificationsChanged{State: realtime.StateAllDeleted})

	return deleted, nil
}

// push is best-effort: an offline recipient simply gets nothing
func (s *notificationService) push(ctx context.Context, recipientID string, event realtime.OutboundEvent) {
	delivered, err := s.registry.PushToUser(recipientID, event)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Notification push partially failed",
			slog.String("recipient_id", recipientID),
			slog.String("event", event.Name()),
			slog.Int("delivered", delivered),
			slog.Any("error", err),
		)
	}
}
