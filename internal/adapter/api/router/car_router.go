package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupCarRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, staffMiddleware *middleware.StaffMiddleware) {
	carHandler := handler.GetCarHandler()

	// Browse endpoints are public; a valid token personalizes them with
	// view-history recording.
	e.GET("/v1/cars", carHandler.ListCars, authMiddleware.OptionalAuthenticate)
	e.GET("/v1/cars/:id", carHandler.GetCar, authMiddleware.OptionalAuthenticate)

	// Catalog management is staff-only
	admin := e.Group("/v1/cars")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(staffMiddleware.StaffOnly)

	admin.POST("", carHandler.CreateCar)
	admin.PUT("/:id", carHandler.UpdateCar)
	admin.DELETE("/:id", carHandler.DeleteCar)
	admin.POST("/:id/photo", carHandler.UploadPhoto)
}
