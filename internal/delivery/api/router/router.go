// Package router wires the REST and socket routes of the API server.
package router

import (
	"huddle/internal/delivery/api/middleware"
	"huddle/internal/delivery/api/router/handler"
	"huddle/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ChatHandler         *handler.ChatHandler
	NotificationHandler *handler.NotificationHandler
	WSHandler           *ws.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	chatHandler         *handler.ChatHandler
	notificationHandler *handler.NotificationHandler
	wsHandler           *ws.Handler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		chatHandler:         params.ChatHandler,
		notificationHandler: params.NotificationHandler,
		wsHandler:           params.WSHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Authentication runs before the upgrade so a bad token is a plain 401
	e.GET("/ws", r.wsHandler.Serve, r.authMiddleware.Authenticate)

	chats := e.Group("/chats", r.authMiddleware.Authenticate)
	{
		chats.POST("/direct/:userId", r.chatHandler.CreateDirect)
		chats.POST("/group", r.chatHandler.CreateGroup)
		chats.POST("/challenge/:challengeId", r.chatHandler.CreateChallenge)
		chats.GET("", r.chatHandler.ListRooms)
		chats.GET("/:id", r.chatHandler.GetRoom)
		chats.GET("/:id/messages", r.chatHandler.ListMessages)
		chats.PUT("/:id/participants", r.chatHandler.AddParticipant)
		chats.DELETE("/:id/participants/:userId", r.chatHandler.RemoveParticipant)
		chats.DELETE("/:id", r.chatHandler.DeleteRoom)
	}

	notifications := e.Group("/notifications", r.authMiddleware.Authenticate)
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.GET("/unread/count", r.notificationHandler.UnreadCount)
		notifications.POST("/read-all", r.notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
		notifications.DELETE("", r.notificationHandler.DeleteAllNotifications)
		notifications.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}
}
