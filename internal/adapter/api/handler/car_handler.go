package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/response"
	"github.com/Nekta161/autosalon/pkg/utils"
)

type CarHandler struct {
	carUseCase *usecase.CarUseCase
}

func NewCarHandler(carUseCase *usecase.CarUseCase) *CarHandler {
	return &CarHandler{
		carUseCase: carUseCase,
	}
}

// viewerID is empty for anonymous browsers; OptionalAuthenticate sets uid
// only when a valid token came along.
func viewerID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func (h *CarHandler) ListCars(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	cars, total, err := h.carUseCase.ListAvailable(
		c.Request().Context(),
		viewerID(c),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, cars, total, pagination.Page, pagination.PageSize)
}

func (h *CarHandler) GetCar(c echo.Context) error {
	carID := c.Param("id")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	car, err := h.carUseCase.GetByID(c.Request().Context(), viewerID(c), carID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, car)
}

func (h *CarHandler) CreateCar(c echo.Context) error {
	var req usecase.CarInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	car, err := h.carUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, car)
}

func (h *CarHandler) UpdateCar(c echo.Context) error {
	carID := c.Param("id")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	var req usecase.CarInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	car, err := h.carUseCase.Update(c.Request().Context(), carID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, car)
}

func (h *CarHandler) DeleteCar(c echo.Context) error {
	carID := c.Param("id")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	if err := h.carUseCase.Delete(c.Request().Context(), carID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Car deleted successfully",
	})
}

func (h *CarHandler) UploadPhoto(c echo.Context) error {
	carID := c.Param("id")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Photo file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	car, err := h.carUseCase.UploadPhoto(c.Request().Context(), carID, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, car)
}
