// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomKind classifies a chat room.
type RoomKind string

const (
	RoomKindDirect    RoomKind = "DIRECT"
	RoomKindGroup     RoomKind = "GROUP"
	RoomKindChallenge RoomKind = "CHALLENGE"
)

// MinGroupParticipants is the smallest participant set accepted when a GROUP or CHALLENGE room is created.
const MinGroupParticipants = 2

// Room is a chat room and its append-only message history.
type Room struct {
	ID             uuid.UUID            `json:"id"`                     // The unique identifier of the room.
	Kind           RoomKind             `json:"type"`                   // DIRECT, GROUP or CHALLENGE.
	Name           string               `json:"name"`                   // Display name.
	ParticipantIDs []string             `json:"participants"`           // Distinct user IDs allowed to read and write.
	ChallengeID    *uuid.UUID           `json:"challenge_id,omitempty"` // Set for CHALLENGE rooms only.
	Messages       []Message            `json:"messages,omitempty"`     // Loaded only for room detail.
	LastRead       map[string]time.Time `json:"last_read,omitempty"`    // Per-participant read marker.
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"` // Bumped on every appended message.
}

// HasParticipant reports whether userID belongs to the room.
func (r *Room) HasParticipant(userID string) bool {
	return slices.Contains(r.ParticipantIDs, userID)
}

// OtherParticipants returns every participant except userID.
func (r *Room) OtherParticipants(userID string) []string {
	return OtherParticipants(r.ParticipantIDs, userID)
}

// OtherParticipants filters userID out of participants.
func OtherParticipants(participants []string, userID string) []string {
	others := make([]string, 0, len(participants))
	for _, id := range participants {
		if id != userID {
			others = append(others, id)
		}
	}

	return others
}

// DirectKey is the order-independent identity of a DIRECT room between two users.
func DirectKey(userA, userB string) string {
	pair := []string{userA, userB}
	slices.Sort(pair)

	return strings.Join(pair, ":")
}
