package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupNewsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, staffMiddleware *middleware.StaffMiddleware) {
	newsHandler := handler.GetNewsHandler()

	e.GET("/v1/news", newsHandler.ListNews)

	admin := e.Group("/v1/news")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(staffMiddleware.StaffOnly)

	admin.POST("", newsHandler.CreateNews)
	admin.PUT("/:id", newsHandler.UpdateNews)
}
