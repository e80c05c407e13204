package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"huddle/internal/domain/entity"
	domainerrors "huddle/internal/domain/errors"
	mockUsecase "huddle/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: testLogger()})

	e := createTestEcho("bob")
	e.GET("/notifications", h.ListNotifications)
	e.GET("/notifications/unread/count", h.UnreadCount)
	e.POST("/notifications/read-all", h.MarkAllRead)
	e.POST("/notifications/:id/read", h.MarkRead)
	e.DELETE("/notifications", h.DeleteAllNotifications)
	e.DELETE("/notifications/:id", h.DeleteNotification)

	return e, notificationUC
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	e, notificationUC := createTestNotificationHandler(t)
	page := &entity.NotificationPage{Items: []*entity.Notification{}, Total: 0, Page: 2, Limit: 5}
	notificationUC.EXPECT().ListNotifications(mock.Anything, "bob", 2, 5).Return(page, nil)

	rec := doRequest(e, http.MethodGet, "/notifications?page=2&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.NotificationPage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, 2, got.Page)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	e, notificationUC := createTestNotificationHandler(t)
	notificationUC.EXPECT().UnreadCount(mock.Anything, "bob").Return(int64(3), nil)

	rec := doRequest(e, http.MethodGet, "/notifications/unread/count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, string(decodeEnvelope(t, rec).Data))
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	e, notificationUC := createTestNotificationHandler(t)
	id, missing := uuid.New(), uuid.New()
	notificationUC.EXPECT().MarkRead(mock.Anything, id, "bob").Return(&entity.Notification{ID: id, IsRead: true}, nil)
	notificationUC.EXPECT().MarkRead(mock.Anything, missing, "bob").Return(nil, domainerrors.ErrNotificationNotFound)

	assert.Equal(t, http.StatusOK, doRequest(e, http.MethodPost, "/notifications/"+id.String()+"/read", "").Code)

	rec := doRequest(e, http.MethodPost, "/notifications/"+missing.String()+"/read", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestNotificationHandler_BulkOperations(t *testing.T) {
	e, notificationUC := createTestNotificationHandler(t)
	notificationUC.EXPECT().MarkAllRead(mock.Anything, "bob").Return(int64(0), nil)
	notificationUC.EXPECT().DeleteAllNotifications(mock.Anything, "bob").Return(int64(4), nil)

	rec := doRequest(e, http.MethodPost, "/notifications/read-all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":0}`, string(decodeEnvelope(t, rec).Data))

	rec = doRequest(e, http.MethodDelete, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":4}`, string(decodeEnvelope(t, rec).Data))
}

func TestNotificationHandler_DeleteNotification_BadID(t *testing.T) {
	e, _ := createTestNotificationHandler(t)

	rec := doRequest(e, http.MethodDelete, "/notifications/xyz", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
