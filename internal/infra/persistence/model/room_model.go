// Package model holds the GORM table mappings of the chat store.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoomModel is the GORM-specific struct for the 'chat_rooms' table.
type RoomModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Kind         string         `gorm:"type:text;not null"`
	Name         string         `gorm:"type:text;not null"`
	Participants pq.StringArray `gorm:"type:text[];not null;index:idx_chat_rooms_participants,type:gin"`
	// DirectKey is the sorted user pair of a DIRECT room; NULL for other kinds so the unique index ignores them.
	DirectKey   *string    `gorm:"type:text;uniqueIndex"`
	ChallengeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "chat_rooms"
}

// MessageModel is the GORM-specific struct for the 'chat_messages' table.
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_room_created,priority:1"`
	AuthorID  string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null;default:''"`
	Kind      string    `gorm:"type:text;not null;default:'TEXT'"`
	FileURL   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_chat_messages_room_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "chat_messages"
}

// ReadMarkerModel is the GORM-specific struct for the 'chat_read_markers' table.
type ReadMarkerModel struct {
	RoomID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     string    `gorm:"type:text;primaryKey"`
	LastReadAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReadMarkerModel) TableName() string {
	return "chat_read_markers"
}

// ChallengeModel maps the columns of the 'challenges' table this service reads.
// The table belongs to the challenge service and is never migrated from here.
type ChallengeModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Title string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ChatModels lists the tables owned by this service, in creation order.
func ChatModels() []any {
	return []any{&RoomModel{}, &MessageModel{}, &ReadMarkerModel{}, &NotificationModel{}}
}
