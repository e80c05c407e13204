package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/response"
	"huddle/internal/domain/repository"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	RoomUC usecase.RoomUsecase
	Logger *slog.Logger
}

// ChatHandler serves the chat room REST routes
type ChatHandler struct {
	roomUC usecase.RoomUsecase
	logger *slog.Logger
}

func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		roomUC: params.RoomUC,
		logger: params.Logger,
	}
}

// CreateGroupRequest is the body of POST /chats/group
type CreateGroupRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

// CreateChallengeRoomRequest is the body of POST /chats/challenge/:challengeId
type CreateChallengeRoomRequest struct {
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

// AddParticipantRequest is the body of PUT /chats/:id/participants
type AddParticipantRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// ListMessagesQuery pages backwards from Before
type ListMessagesQuery struct {
	Before string `query:"before"`
	Limit  int    `query:"limit"`
}

func (h *ChatHandler) CreateDirect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	otherID := c.Param("userId")
	if otherID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	room, err := h.roomUC.CreateDirect(c.Request().Context(), userID, otherID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

func (h *ChatHandler) CreateGroup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err, "Invalid group chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	room, err := h.roomUC.CreateGroup(c.Request().Context(), userID, req.Name, req.Participants)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, room)
}

func (h *ChatHandler) CreateChallenge(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	challengeID, err := uuid.Parse(c.Param("challengeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid challenge ID")
	}

	var req CreateChallengeRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err, "Invalid challenge chat input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	room, err := h.roomUC.CreateChallenge(c.Request().Context(), userID, challengeID, req.Participants)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, room)
}

func (h *ChatHandler) ListRooms(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rooms, err := h.roomUC.ListRooms(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rooms)
}

func (h *ChatHandler) GetRoom(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid chat ID")
	}

	room, err := h.roomUC.GetRoom(c.Request().Context(), userID, roomID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid chat ID")
	}

	var query ListMessagesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, err, "Invalid paging parameters")
	}

	cursor := repository.MessageCursor{Limit: query.Limit}
	if query.Before != "" {
		before, err := uuid.Parse(query.Before)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid message cursor")
		}
		cursor.Before = &before
	}

	messages, err := h.roomUC.ListMessages(c.Request().Context(), userID, roomID, cursor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

func (h *ChatHandler) AddParticipant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid chat ID")
	}

	var req AddParticipantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, err, "Invalid participant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	room, err := h.roomUC.AddParticipant(c.Request().Context(), userID, roomID, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

func (h *ChatHandler) RemoveParticipant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid chat ID")
	}

	room, err := h.roomUC.RemoveParticipant(c.Request().Context(), userID, roomID, c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, room)
}

func (h *ChatHandler) DeleteRoom(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid chat ID")
	}

	if err := h.roomUC.DeleteRoom(c.Request().Context(), userID, roomID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Chat deleted successfully"})
}
