package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectKey_IsOrderIndependent(t *testing.T) {
	assert.Equal(t, DirectKey("alice", "bob"), DirectKey("bob", "alice"))
	assert.Equal(t, "alice:bob", DirectKey("bob", "alice"))
}

func TestRoom_OtherParticipants(t *testing.T) {
	room := &Room{ParticipantIDs: []string{"a", "b", "c"}}

	assert.True(t, room.HasParticipant("b"))
	assert.False(t, room.HasParticipant("z"))
	assert.Equal(t, []string{"a", "c"}, room.OtherParticipants("b"))
}

func TestMessageKind_Valid(t *testing.T) {
	assert.True(t, MessageKindText.Valid())
	assert.True(t, MessageKindFile.Valid())
	assert.False(t, MessageKind("VIDEO").Valid())
}

func TestNotificationDrafts(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		draft        NotificationDraft
		wantCategory NotificationCategory
		wantType     NotificationType
		wantRef      *Reference
		wantSender   bool
	}{
		{
			name:         "social keeps known type",
			draft:        NewSocialNotification("r", "s", TypeLike, "t", "m", &Reference{ID: "p1", Kind: ReferencePost}),
			wantCategory: CategorySocial,
			wantType:     TypeLike,
			wantRef:      &Reference{ID: "p1", Kind: ReferencePost},
			wantSender:   true,
		},
		{
			name:         "social falls back on foreign type",
			draft:        NewSocialNotification("r", "", TypeSystem, "t", "m", nil),
			wantCategory: CategorySocial,
			wantType:     TypeSocial,
		},
		{
			name:         "challenge references the challenge",
			draft:        NewChallengeNotification("r", "s", TypeChallengeInvite, "c1", "t", "m"),
			wantCategory: CategoryChallenge,
			wantType:     TypeChallengeInvite,
			wantRef:      &Reference{ID: "c1", Kind: ReferenceChallenge},
			wantSender:   true,
		},
		{
			name:         "achievement without reference",
			draft:        NewAchievementNotification("r", "", "t", "m"),
			wantCategory: CategoryAchievement,
			wantType:     TypeAchievement,
		},
		{
			name:         "routine references the routine",
			draft:        NewRoutineNotification("r", "rt-9", "t", "m"),
			wantCategory: CategoryRoutine,
			wantType:     TypeRoutine,
			wantRef:      &Reference{ID: "rt-9", Kind: ReferenceRoutine},
		},
		{
			name:         "system",
			draft:        NewSystemNotification("r", "t", "m"),
			wantCategory: CategorySystem,
			wantType:     TypeSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.draft.Complete())

			id := uuid.New()
			n := tt.draft.Build(id, now)

			assert.Equal(t, id, n.ID)
			assert.Equal(t, "r", n.RecipientID)
			assert.Equal(t, tt.wantCategory, n.Category)
			assert.Equal(t, tt.wantType, n.Type)
			assert.Equal(t, tt.wantRef, n.Reference)
			assert.Equal(t, tt.wantSender, n.SenderID != nil)
			assert.False(t, n.IsRead)
			assert.Equal(t, now, n.CreatedAt)
		})
	}
}

func TestNotificationDraft_IncompleteWithoutRecipient(t *testing.T) {
	assert.False(t, NewSystemNotification("", "t", "m").Complete())
	assert.False(t, NotificationDraft{}.Complete())
}
