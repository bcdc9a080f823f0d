package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, staffMiddleware *middleware.StaffMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.GET("/:carId/messages", chatHandler.GetHistory) // GET /v1/chat/:carId/messages - Room backlog

	// Only staff mark messages read from the dashboard
	chat.POST("/messages/:id/read", chatHandler.MarkRead, staffMiddleware.StaffOnly)
}
