package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, staffMiddleware *middleware.StaffMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.POST("", orderHandler.CreateOrder) // POST /v1/orders - Submit a purchase request
	orders.GET("", orderHandler.ListMyOrders) // GET /v1/orders - Requester's own orders

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(staffMiddleware.StaffOnly)

	admin.GET("", orderHandler.ListAllOrders)                  // GET /v1/admin/orders - All orders
	admin.PATCH("/:id/status", orderHandler.UpdateOrderStatus) // PATCH /v1/admin/orders/:id/status - Move order status
}
