package postgres

import (
	"context"
	"time"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	"huddle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	return nil
}

// FindNotificationsByRecipient retrieves one page of a recipient's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	var (
		notificationModels []*model.NotificationModel
		total              int64
	)

	base := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ?", recipientID)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	query := base.Session(&gorm.Session{}).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead is scoped to the recipient, so a foreign notification reads as missing.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, recipientID string) (*entity.Notification, error) {
	var updated []*model.NotificationModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]any{
			"is_read":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(updated[0]), nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]any{
			"is_read":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications as read")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID, recipientID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) DeleteAllNotifications(ctx context.Context, recipientID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	notification := &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		SenderID:    data.SenderID,
		Category:    entity.NotificationCategory(data.Category),
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.ReferenceID != nil {
		ref := &entity.Reference{ID: *data.ReferenceID}
		if data.ReferenceKind != nil {
			ref.Kind = entity.ReferenceKind(*data.ReferenceKind)
		}
		notification.Reference = ref
	}

	return notification
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationM := &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		SenderID:    data.SenderID,
		Category:    string(data.Category),
		Type:        string(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Reference != nil {
		refID := data.Reference.ID
		refKind := string(data.Reference.Kind)
		notificationM.ReferenceID = &refID
		notificationM.ReferenceKind = &refKind
	}

	return notificationM
}
