package main

import (
	"testing"

	"huddle/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	event, err := parseEvent([]string{
		"-recipient", "bob",
		"-category", "SOCIAL",
		"-type", "FOLLOW",
		"-sender", "alice",
		"-title", "New follower",
	})
	require.NoError(t, err)

	assert.Equal(t, "bob", event.RecipientID)
	assert.Equal(t, entity.CategorySocial, event.Category)
	assert.Equal(t, entity.TypeFollow, event.Type)
	assert.NotEmpty(t, event.RequestID)
}

func TestParseEvent_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing recipient", []string{"-category", "SYSTEM"}},
		{"unknown category", []string{"-recipient", "bob", "-category", "MARKETING"}},
		{"unknown flag", []string{"-recipient", "bob", "-priority", "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEvent(tt.args)
			assert.Error(t, err)
		})
	}
}
