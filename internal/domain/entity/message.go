package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind is the content type of a chat message.
type MessageKind string

const (
	MessageKindText  MessageKind = "TEXT"
	MessageKindImage MessageKind = "IMAGE"
	MessageKindFile  MessageKind = "FILE"
)

// Valid reports whether k is a known message kind.
func (k MessageKind) Valid() bool {
	switch k {
	case MessageKindText, MessageKindImage, MessageKindFile:
		return true
	default:
		return false
	}
}

// Message is one entry of a room's history. Messages are never edited.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	RoomID    uuid.UUID   `json:"chat_id"`
	AuthorID  string      `json:"sender"`
	Content   string      `json:"content"`
	Kind      MessageKind `json:"type"`
	FileURL   *string     `json:"file_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
