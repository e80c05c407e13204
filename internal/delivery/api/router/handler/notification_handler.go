package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/response"
	"huddle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification REST routes
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotificationsQuery is clamped by the usecase
type ListNotificationsQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query ListNotificationsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, err, "Invalid paging parameters")
	}

	page, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, query.Page, query.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	notification, err := h.notificationUC.MarkRead(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), id, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted successfully"})
}

func (h *NotificationHandler) DeleteAllNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deleted, err := h.notificationUC.DeleteAllNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}
