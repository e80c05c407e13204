package repository

import (
	"context"
	"errors"

	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found for its recipient.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
// Every read or write other than CreateNotification is scoped to the recipient.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByRecipient returns a page of notifications, newest first, and the total count.
	FindNotificationsByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error)

	// CountUnread counts the recipient's unread notifications.
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkRead flags one notification as read and returns it.
	MarkRead(ctx context.Context, id uuid.UUID, recipientID string) (*entity.Notification, error)

	// MarkAllRead flags every unread notification of the recipient as read.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)

	// DeleteNotification removes one notification of the recipient.
	DeleteNotification(ctx context.Context, id uuid.UUID, recipientID string) error

	// DeleteAllNotifications removes every notification of the recipient.
	DeleteAllNotifications(ctx context.Context, recipientID string) (int64, error)
}
