package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	RecipientID   string    `gorm:"type:text;not null;index:idx_notifications_recipient_created,priority:1"`
	SenderID      *string   `gorm:"type:text"`
	Category      string    `gorm:"type:text;not null"`
	Type          string    `gorm:"type:text;not null"`
	Title         string    `gorm:"type:text;not null"`
	Message       string    `gorm:"type:text;not null;default:''"`
	ReferenceID   *string   `gorm:"type:text"`
	ReferenceKind *string   `gorm:"type:text"`
	IsRead        bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time `gorm:"index:idx_notifications_recipient_created,priority:2,sort:desc"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
