package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
)

// SetupRealtimeRouter wires the websocket endpoints. Authentication happens
// inside the handlers: chat accepts anonymous listeners, notifications
// refuses non-staff before the upgrade.
func SetupRealtimeRouter(e *echo.Echo) {
	realtimeHandler := handler.GetRealtimeHandler()

	e.GET("/ws/chat/:carId", realtimeHandler.HandleChat)
	e.GET("/ws/notifications", realtimeHandler.HandleNotifications)
	e.GET("/ws/cars", realtimeHandler.HandleCarUpdates)
}
