package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/response"
	"github.com/Nekta161/autosalon/pkg/utils"
)

type NewsHandler struct {
	newsUseCase *usecase.NewsUseCase
}

func NewNewsHandler(newsUseCase *usecase.NewsUseCase) *NewsHandler {
	return &NewsHandler{
		newsUseCase: newsUseCase,
	}
}

func (h *NewsHandler) ListNews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.newsUseCase.ListActive(
		c.Request().Context(),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *NewsHandler) CreateNews(c echo.Context) error {
	var req usecase.NewsInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	news, err := h.newsUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, news)
}

func (h *NewsHandler) UpdateNews(c echo.Context) error {
	newsID := c.Param("id")
	if newsID == "" {
		return response.Error(c, errors.BadRequest("News ID is required", nil))
	}

	var req usecase.NewsInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	news, err := h.newsUseCase.Update(c.Request().Context(), newsID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, news)
}
