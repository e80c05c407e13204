// Package realtime holds the in-process connection registry and the typed
// events exchanged with connected sessions.
package realtime

import (
	"huddle/internal/domain/entity"

	"github.com/google/uuid"
)

// Inbound event names.
const (
	EventJoinChat    = "joinChat"
	EventLeaveChat   = "leaveChat"
	EventSendMessage = "sendMessage"
	EventMarkAsRead  = "markAsRead"
	EventTyping      = "typing"
)

// Outbound event names.
const (
	EventNewMessage    = "newMessage"
	EventUserTyping    = "userTyping"
	EventNotification  = "notification"
	EventNotifications = "notifications"
	EventAck           = "ack"
)

// Notification list states pushed with EventNotifications.
const (
	StateAllRead    = "all read"
	StateAllDeleted = "all deleted"
)

// InboundEvent is the closed set of client requests handled by the event router.
type InboundEvent interface {
	Name() string
	inbound()
}

type JoinChat struct {
	ChatID string
}

type LeaveChat struct {
	ChatID string
}

type SendMessage struct {
	ChatID  string             `json:"chatId" validate:"required"`
	Content string             `json:"content" validate:"required_without=FileURL,max=4000"`
	Type    entity.MessageKind `json:"type" validate:"omitempty,oneof=TEXT IMAGE FILE"`
	FileURL *string            `json:"fileUrl" validate:"omitempty,url"`
}

type MarkAsRead struct {
	ChatID string
}

type Typing struct {
	ChatID   string `json:"chatId" validate:"required"`
	IsTyping bool   `json:"isTyping"`
}

func (JoinChat) Name() string    { return EventJoinChat }
func (LeaveChat) Name() string   { return EventLeaveChat }
func (SendMessage) Name() string { return EventSendMessage }
func (MarkAsRead) Name() string  { return EventMarkAsRead }
func (Typing) Name() string      { return EventTyping }

func (JoinChat) inbound()    {}
func (LeaveChat) inbound()   {}
func (SendMessage) inbound() {}
func (MarkAsRead) inbound()  {}
func (Typing) inbound()      {}

// OutboundEvent is the closed set of server pushes.
type OutboundEvent interface {
	Name() string
	Payload() any
}

// NewMessage carries a persisted message to the other participants of a room.
type NewMessage struct {
	ChatID  uuid.UUID
	Message entity.Message
}

// UserTyping is an ephemeral typing indicator.
type UserTyping struct {
	ChatID   uuid.UUID
	UserID   string
	IsTyping bool
}

// NotificationPushed delivers a created or updated notification to its recipient.
type NotificationPushed struct {
	Notification *entity.Notification
}

// NotificationsChanged signals a bulk state change of the recipient's notifications.
type NotificationsChanged struct {
	State string
}

func (NewMessage) Name() string           { return EventNewMessage }
func (UserTyping) Name() string           { return EventUserTyping }
func (NotificationPushed) Name() string   { return EventNotification }
func (NotificationsChanged) Name() string { return EventNotifications }

func (e NewMessage) Payload() any {
	return struct {
		ChatID  uuid.UUID      `json:"chatId"`
		Message entity.Message `json:"message"`
	}{e.ChatID, e.Message}
}

func (e UserTyping) Payload() any {
	return struct {
		ChatID   uuid.UUID `json:"chatId"`
		UserID   string    `json:"userId"`
		IsTyping bool      `json:"isTyping"`
	}{e.ChatID, e.UserID, e.IsTyping}
}

func (e NotificationPushed) Payload() any   { return e.Notification }
func (e NotificationsChanged) Payload() any { return e.State }

// Ack statuses.
const (
	AckSuccess = "success"
	AckError   = "error"
)

// Ack is the reply to every inbound event.
type Ack struct {
	Status  string `json:"status"`
	Message any    `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Succeeded builds a success ack.
func Succeeded(message any) Ack {
	return Ack{Status: AckSuccess, Message: message}
}

// Rejected builds an error ack.
func Rejected(code, message string) Ack {
	return Ack{Status: AckError, Code: code, Message: message}
}

// OK reports whether the ack is a success.
func (a Ack) OK() bool {
	return a.Status == AckSuccess
}
