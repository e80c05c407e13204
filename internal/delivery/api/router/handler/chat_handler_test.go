package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/validator"
	deliverycontext "huddle/internal/delivery/context"
	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	"huddle/internal/domain/repository"
	mockUsecase "huddle/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestEcho mimics the API server with the caller already authenticated as userID
func createTestEcho(userID string) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID != "" {
				deliverycontext.SetUserID(c, userID)
			}

			return next(c)
		}
	})

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func createTestChatHandler(t *testing.T, userID string) (*echo.Echo, *mockUsecase.MockRoomUsecase) {
	roomUC := mockUsecase.NewMockRoomUsecase(t)
	h := NewChatHandler(ChatHandlerParams{RoomUC: roomUC, Logger: testLogger()})

	e := createTestEcho(userID)
	e.POST("/chats/direct/:userId", h.CreateDirect)
	e.POST("/chats/group", h.CreateGroup)
	e.POST("/chats/challenge/:challengeId", h.CreateChallenge)
	e.GET("/chats", h.ListRooms)
	e.GET("/chats/:id", h.GetRoom)
	e.GET("/chats/:id/messages", h.ListMessages)
	e.PUT("/chats/:id/participants", h.AddParticipant)
	e.DELETE("/chats/:id/participants/:userId", h.RemoveParticipant)
	e.DELETE("/chats/:id", h.DeleteRoom)

	return e, roomUC
}

func TestChatHandler_CreateDirect(t *testing.T) {
	e, roomUC := createTestChatHandler(t, "alice")
	room := &entity.Room{ID: uuid.New(), Kind: entity.RoomKindDirect, ParticipantIDs: []string{"alice", "bob"}}
	roomUC.EXPECT().CreateDirect(mock.Anything, "alice", "bob").Return(room, nil)

	rec := doRequest(e, http.MethodPost, "/chats/direct/bob", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.Room
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, room.ID, got.ID)
	assert.Equal(t, []string{"alice", "bob"}, got.ParticipantIDs)
}

func TestChatHandler_CreateGroup_Validation(t *testing.T) {
	e, _ := createTestChatHandler(t, "alice")

	rec := doRequest(e, http.MethodPost, "/chats/group", `{"name":"","participants":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "Name failed on required")
}

func TestChatHandler_CreateGroup_MalformedBody(t *testing.T) {
	e, _ := createTestChatHandler(t, "alice")

	rec := doRequest(e, http.MethodPost, "/chats/group", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Equal(t, "Invalid group chat input", env.Error.Message)
	assert.NotNil(t, env.Error.Details)
}

func TestChatHandler_CreateGroup(t *testing.T) {
	e, roomUC := createTestChatHandler(t, "alice")
	room := &entity.Room{ID: uuid.New(), Kind: entity.RoomKindGroup, Name: "Morning runners"}
	roomUC.EXPECT().CreateGroup(mock.Anything, "alice", "Morning runners", []string{"bob", "carol"}).Return(room, nil)

	rec := doRequest(e, http.MethodPost, "/chats/group", `{"name":"Morning runners","participants":["bob","carol"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestChatHandler_CreateChallenge_BadID(t *testing.T) {
	e, _ := createTestChatHandler(t, "alice")

	rec := doRequest(e, http.MethodPost, "/chats/challenge/not-a-uuid", `{"participants":["bob"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestChatHandler_GetRoom_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not a member", domainerrors.ErrNotAMember, http.StatusForbidden, "NOT_A_PARTICIPANT"},
		{"missing room", domainerrors.ErrRoomNotFound, http.StatusNotFound, "CHAT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, roomUC := createTestChatHandler(t, "mallory")
			roomID := uuid.New()
			roomUC.EXPECT().GetRoom(mock.Anything, "mallory", roomID).Return(nil, tt.err)

			rec := doRequest(e, http.MethodGet, "/chats/"+roomID.String(), "")

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestChatHandler_ListMessages_PassesCursor(t *testing.T) {
	e, roomUC := createTestChatHandler(t, "alice")
	roomID, before := uuid.New(), uuid.New()
	roomUC.EXPECT().
		ListMessages(mock.Anything, "alice", roomID, repository.MessageCursor{Before: &before, Limit: 10}).
		Return([]entity.Message{}, nil)

	rec := doRequest(e, http.MethodGet, "/chats/"+roomID.String()+"/messages?before="+before.String()+"&limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatHandler_Participants(t *testing.T) {
	e, roomUC := createTestChatHandler(t, "alice")
	roomID := uuid.New()
	room := &entity.Room{ID: roomID, Kind: entity.RoomKindGroup}

	roomUC.EXPECT().AddParticipant(mock.Anything, "alice", roomID, "dave").Return(room, nil)
	roomUC.EXPECT().RemoveParticipant(mock.Anything, "alice", roomID, "bob").
		Return(nil, domainerrors.ErrDuplicateOrMissingParticipant)

	rec := doRequest(e, http.MethodPut, "/chats/"+roomID.String()+"/participants", `{"userId":"dave"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/chats/"+roomID.String()+"/participants/bob", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PARTICIPANT_CONFLICT", decodeEnvelope(t, rec).Error.Code)
}

func TestChatHandler_DeleteRoom(t *testing.T) {
	e, roomUC := createTestChatHandler(t, "alice")
	roomID := uuid.New()
	roomUC.EXPECT().DeleteRoom(mock.Anything, "alice", roomID).Return(nil)

	rec := doRequest(e, http.MethodDelete, "/chats/"+roomID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatHandler_RequiresUser(t *testing.T) {
	e, _ := createTestChatHandler(t, "")

	rec := doRequest(e, http.MethodGet, "/chats", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
