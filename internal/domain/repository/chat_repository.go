package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error

	// ListByCar returns messages for one car room, oldest first.
	ListByCar(ctx context.Context, carID string, limit, offset int) ([]*entity.ChatMessage, int64, error)

	MarkRead(ctx context.Context, messageID string) error
}
