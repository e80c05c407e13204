package usecase

import (
	"context"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase persists notifications and pushes them to online recipients.
type NotificationUsecase interface {
	// Dispatch persists a draft, then pushes it to every session of an online recipient.
	Dispatch(ctx context.Context, draft entity.NotificationDraft) (*entity.Notification, error)

	CreateSocial(ctx context.Context, recipientID, senderID string, typ entity.NotificationType, title, message string, ref *entity.Reference) (*entity.Notification, error)
	CreateChallenge(ctx context.Context, recipientID, senderID string, typ entity.NotificationType, challengeID, title, message string) (*entity.Notification, error)
	CreateAchievement(ctx context.Context, recipientID, achievementID, title, message string) (*entity.Notification, error)
	CreateRoutine(ctx context.Context, recipientID, routineID, title, message string) (*entity.Notification, error)
	CreateSystem(ctx context.Context, recipientID, title, message string) (*entity.Notification, error)

	// ListNotifications returns one page of the recipient's notifications, newest first.
	ListNotifications(ctx context.Context, recipientID string, page, limit int) (*entity.NotificationPage, error)

	// UnreadCount counts the recipient's unread notifications.
	UnreadCount(ctx context.Context, recipientID string) (int64, error)

	// MarkRead marks one owned notification as read.
	MarkRead(ctx context.Context, id uuid.UUID, recipientID string) (*entity.Notification, error)

	// MarkAllRead marks every notification of the recipient as read. It always succeeds for an existing store.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)

	// DeleteNotification deletes one owned notification.
	DeleteNotification(ctx context.Context, id uuid.UUID, recipientID string) error

	// DeleteAllNotifications deletes every notification of the recipient.
	DeleteAllNotifications(ctx context.Context, recipientID string) (int64, error)
}
