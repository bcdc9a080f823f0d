package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	"github.com/Nekta161/autosalon/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	// All favorite endpoints require authentication
	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.POST("/:carId", favoriteHandler.AddFavorite)               // POST /v1/favorites/:carId - Add to favorites
	favorites.DELETE("/:carId", favoriteHandler.RemoveFavorite)          // DELETE /v1/favorites/:carId - Remove from favorites
	favorites.GET("", favoriteHandler.ListFavorites)                     // GET /v1/favorites - List user's favorites
	favorites.GET("/:carId/status", favoriteHandler.CheckFavoriteStatus) // GET /v1/favorites/:carId/status - Check favorite flag
}
