package service

import (
	"context"

	"huddle/internal/domain/entity"
)

// DomainEvent is a notification request published by another service of the platform
// (challenges, social graph, achievements) and consumed from Pub/Sub.
type DomainEvent struct {
	RequestID     string                      `json:"request_id,omitempty"` // For distributed tracing
	Category      entity.NotificationCategory `json:"category"`
	Type          entity.NotificationType     `json:"type,omitempty"`
	RecipientID   string                      `json:"recipient_id"`
	SenderID      string                      `json:"sender_id,omitempty"`
	Title         string                      `json:"title"`
	Message       string                      `json:"message"`
	ReferenceID   string                      `json:"reference_id,omitempty"`
	ReferenceKind entity.ReferenceKind        `json:"reference_model,omitempty"`
}

// Draft maps the event onto the constructor of its category. ok is false for unknown categories.
func (e *DomainEvent) Draft() (draft entity.NotificationDraft, ok bool) {
	switch e.Category {
	case entity.CategorySocial:
		var ref *entity.Reference
		if e.ReferenceID != "" {
			ref = &entity.Reference{ID: e.ReferenceID, Kind: e.ReferenceKind}
		}

		return entity.NewSocialNotification(e.RecipientID, e.SenderID, e.Type, e.Title, e.Message, ref), true
	case entity.CategoryChallenge:
		return entity.NewChallengeNotification(e.RecipientID, e.SenderID, e.Type, e.ReferenceID, e.Title, e.Message), true
	case entity.CategoryAchievement:
		return entity.NewAchievementNotification(e.RecipientID, e.ReferenceID, e.Title, e.Message), true
	case entity.CategoryRoutine:
		return entity.NewRoutineNotification(e.RecipientID, e.ReferenceID, e.Title, e.Message), true
	case entity.CategorySystem:
		return entity.NewSystemNotification(e.RecipientID, e.Title, e.Message), true
	default:
		return entity.NotificationDraft{}, false
	}
}

// DomainEventPublisher delivers domain events to the notification ingestion path.
type DomainEventPublisher interface {
	Publish(ctx context.Context, event *DomainEvent) error
	Close() error
}
