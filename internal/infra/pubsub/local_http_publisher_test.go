package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"huddle/config"
	"huddle/internal/domain/entity"
	"huddle/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var (
		received  PushEnvelope
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := &service.DomainEvent{
		RequestID:   "req-42",
		Category:    entity.CategoryAchievement,
		RecipientID: "bob",
		Title:       "Streak",
		Message:     "7 days in a row",
		ReferenceID: "ach-1",
	}

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"category":     "ACHIEVEMENT",
		"recipient_id": "bob",
		"request_id":   "req-42",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.Publish(context.Background(), &service.DomainEvent{Category: entity.CategorySystem, RecipientID: "bob", Title: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{"missing config", nil, "not configured"},
		{"push without endpoint", &config.PubSubConfig{Provider: "push"}, "push endpoint"},
		{"google without project", &config.PubSubConfig{Provider: "google", TopicID: "t"}, "project ID"},
		{"google without topic", &config.PubSubConfig{Provider: "google", ProjectID: "p"}, "topic ID"},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPublisher(context.Background(), tt.cfg, testLogger())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	publisher, err := NewPublisher(context.Background(), &config.PubSubConfig{Provider: "push", PushEndpoint: "http://localhost:8081/push"}, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, publisher)
}
