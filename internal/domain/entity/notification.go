package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// NotificationCategory selects which constructor produced a notification.
type NotificationCategory string

const (
	CategorySocial      NotificationCategory = "SOCIAL"
	CategoryChallenge   NotificationCategory = "CHALLENGE"
	CategoryAchievement NotificationCategory = "ACHIEVEMENT"
	CategoryRoutine     NotificationCategory = "ROUTINE"
	CategorySystem      NotificationCategory = "SYSTEM"
)

// NotificationType is the fine-grained kind shown to clients.
type NotificationType string

const (
	TypeChallengeInvite   NotificationType = "CHALLENGE_INVITE"
	TypeChallengeComplete NotificationType = "CHALLENGE_COMPLETE"
	TypeChallenge         NotificationType = "CHALLENGE"
	TypeFollow            NotificationType = "FOLLOW"
	TypeLike              NotificationType = "LIKE"
	TypeComment           NotificationType = "COMMENT"
	TypeNewMessage        NotificationType = "NEW_MESSAGE"
	TypeSocial            NotificationType = "SOCIAL"
	TypeAchievement       NotificationType = "ACHIEVEMENT"
	TypeRoutine           NotificationType = "ROUTINE"
	TypeSystem            NotificationType = "SYSTEM"
)

var (
	socialTypes    = []NotificationType{TypeSocial, TypeFollow, TypeLike, TypeComment, TypeNewMessage}
	challengeTypes = []NotificationType{TypeChallenge, TypeChallengeInvite, TypeChallengeComplete}
)

// ReferenceKind names the entity a notification points at.
type ReferenceKind string

const (
	ReferenceChallenge   ReferenceKind = "Challenge"
	ReferencePost        ReferenceKind = "Post"
	ReferenceUser        ReferenceKind = "User"
	ReferenceChat        ReferenceKind = "Chat"
	ReferenceAchievement ReferenceKind = "Achievement"
	ReferenceRoutine     ReferenceKind = "Routine"
)

// Reference is an optional pointer from a notification to a related entity.
type Reference struct {
	ID   string        `json:"id"`
	Kind ReferenceKind `json:"model"`
}

// Notification is a persisted notification owned by exactly one recipient.
type Notification struct {
	ID          uuid.UUID            `json:"id"`
	RecipientID string               `json:"recipient"`
	SenderID    *string              `json:"sender,omitempty"`
	Category    NotificationCategory `json:"category"`
	Type        NotificationType     `json:"type"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	Reference   *Reference           `json:"reference,omitempty"`
	IsRead      bool                 `json:"is_read"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NotificationDraft is a notification that has not been persisted yet.
// Drafts are only built through the per-category constructors below.
type NotificationDraft struct {
	category    NotificationCategory
	recipientID string
	senderID    *string
	typ         NotificationType
	title       string
	message     string
	reference   *Reference
}

// NewSocialNotification builds a social draft. Unknown types fall back to SOCIAL.
func NewSocialNotification(recipientID, senderID string, typ NotificationType, title, message string, ref *Reference) NotificationDraft {
	if !slices.Contains(socialTypes, typ) {
		typ = TypeSocial
	}

	return NotificationDraft{
		category:    CategorySocial,
		recipientID: recipientID,
		senderID:    optionalSender(senderID),
		typ:         typ,
		title:       title,
		message:     message,
		reference:   ref,
	}
}

// NewChallengeNotification builds a challenge draft referencing challengeID.
func NewChallengeNotification(recipientID, senderID string, typ NotificationType, challengeID, title, message string) NotificationDraft {
	if !slices.Contains(challengeTypes, typ) {
		typ = TypeChallenge
	}

	return NotificationDraft{
		category:    CategoryChallenge,
		recipientID: recipientID,
		senderID:    optionalSender(senderID),
		typ:         typ,
		title:       title,
		message:     message,
		reference:   optionalReference(challengeID, ReferenceChallenge),
	}
}

// NewAchievementNotification builds an achievement draft. achievementID may be empty.
func NewAchievementNotification(recipientID, achievementID, title, message string) NotificationDraft {
	return NotificationDraft{
		category:    CategoryAchievement,
		recipientID: recipientID,
		typ:         TypeAchievement,
		title:       title,
		message:     message,
		reference:   optionalReference(achievementID, ReferenceAchievement),
	}
}

// NewRoutineNotification builds a routine reminder referencing routineID.
func NewRoutineNotification(recipientID, routineID, title, message string) NotificationDraft {
	return NotificationDraft{
		category:    CategoryRoutine,
		recipientID: recipientID,
		typ:         TypeRoutine,
		title:       title,
		message:     message,
		reference:   optionalReference(routineID, ReferenceRoutine),
	}
}

// NewSystemNotification builds a system draft with no sender or reference.
func NewSystemNotification(recipientID, title, message string) NotificationDraft {
	return NotificationDraft{
		category:    CategorySystem,
		recipientID: recipientID,
		typ:         TypeSystem,
		title:       title,
		message:     message,
	}
}

func (d NotificationDraft) Category() NotificationCategory { return d.category }
func (d NotificationDraft) RecipientID() string            { return d.recipientID }
func (d NotificationDraft) Type() NotificationType         { return d.typ }

// Complete reports whether the draft carries the fields every notification needs.
func (d NotificationDraft) Complete() bool {
	return d.category != "" && d.recipientID != "" && d.title != ""
}

// Build materializes the draft as an unread notification.
func (d NotificationDraft) Build(id uuid.UUID, now time.Time) *Notification {
	return &Notification{
		ID:          id,
		RecipientID: d.recipientID,
		SenderID:    d.senderID,
		Category:    d.category,
		Type:        d.typ,
		Title:       d.title,
		Message:     d.message,
		Reference:   d.reference,
		IsRead:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func optionalSender(senderID string) *string {
	if senderID == "" {
		return nil
	}

	return &senderID
}

func optionalReference(id string, kind ReferenceKind) *Reference {
	if id == "" {
		return nil
	}

	return &Reference{ID: id, Kind: kind}
}

// NotificationPage is one page of a recipient's notifications, newest first.
type NotificationPage struct {
	Items []*Notification `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
