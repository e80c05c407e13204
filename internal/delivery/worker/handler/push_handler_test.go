package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"huddle/config"
	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/service"
	mockUsecase "huddle/internal/mocks/usecase"
	"huddle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockDomainEventUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := mockUsecase.NewMockDomainEventUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   logger,
		Ingestor: NewEventIngestor(logger, events),
	}), events
}

func createTestPushBody(t *testing.T, event *service.DomainEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush_Ingests(t *testing.T) {
	h, events := createTestPushHandler(t, nil)
	event := &service.DomainEvent{Category: entity.CategorySocial, Type: entity.TypeFollow, RecipientID: "bob", SenderID: "alice", Title: "New follower"}

	events.EXPECT().
		Ingest(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, got *service.DomainEvent) {
			assert.Equal(t, event, got)
			assert.Equal(t, "trace-1", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, createTestPushBody(t, event, map[string]string{"request_id": "trace-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"retryable failure asks for redelivery", usecase.NewRetryableError(errors.New("db down")), http.StatusServiceUnavailable},
		{"validation failure is dropped", domainerrors.ErrValidationFailed.WithDetails("unknown notification category"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, events := createTestPushHandler(t, nil)
			events.EXPECT().Ingest(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, createTestPushBody(t, &service.DomainEvent{Category: entity.CategorySystem, RecipientID: "bob", Title: "x"}, nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_MalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"not json", "{", http.StatusBadRequest},
		{"bad base64", `{"message":{"data":"***","messageId":"m"}}`, http.StatusBadRequest},
		{"payload is not an event", `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `","messageId":"m"}}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t, nil)

			assert.Equal(t, tt.status, servePush(h, tt.body).Code)
		})
	}
}

func TestPushHandler_HandlePush_RejectsUnauthenticatedPush(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: true}}
	h, _ := createTestPushHandler(t, cfg)

	rec := servePush(h, createTestPushBody(t, &service.DomainEvent{Category: entity.CategorySystem, RecipientID: "bob", Title: "x"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
