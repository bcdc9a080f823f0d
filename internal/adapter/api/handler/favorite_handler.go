package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/response"
	"github.com/Nekta161/autosalon/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	carID := c.Param("carId")

	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), userID, carID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	carID := c.Param("carId")

	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	if err := h.favoriteUseCase.Remove(c.Request().Context(), userID, carID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Car removed from favorites successfully",
	})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.favoriteUseCase.List(
		c.Request().Context(),
		userID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *FavoriteHandler) CheckFavoriteStatus(c echo.Context) error {
	userID := c.Get("uid").(string)
	carID := c.Param("carId")

	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	isFavorite, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), userID, carID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"car_id":      carID,
		"is_favorite": isFavorite,
	})
}
