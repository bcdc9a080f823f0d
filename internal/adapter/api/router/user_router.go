package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetProfile)           // GET /v1/users/me - Profile with favorites, views and orders
	users.PATCH("/me", userHandler.UpdateProfile)      // PATCH /v1/users/me - Update profile fields
	users.POST("/me/avatar", userHandler.UploadAvatar) // POST /v1/users/me/avatar - Upload avatar image
}
