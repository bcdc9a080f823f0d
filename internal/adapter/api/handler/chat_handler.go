package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/response"
	"github.com/Nekta161/autosalon/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// GetHistory returns a car room's messages, oldest first, so the client can
// render the backlog before live frames start arriving.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	carID := c.Param("carId")
	if carID == "" {
		return response.Error(c, errors.BadRequest("Car ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.History(
		c.Request().Context(),
		carID,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	messageID := c.Param("id")
	if messageID == "" {
		return response.Error(c, errors.BadRequest("Message ID is required", nil))
	}

	if err := h.chatUseCase.MarkRead(c.Request().Context(), messageID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message marked as read",
	})
}
