package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, staffMiddleware *middleware.StaffMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupCarRouter(e, authMiddleware, staffMiddleware)
	SetupOrderRouter(e, authMiddleware, staffMiddleware)
	SetupChatRouter(e, authMiddleware, staffMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupNewsRouter(e, authMiddleware, staffMiddleware)
	SetupRealtimeRouter(e)
	SetupHealthRouter(e)
}
