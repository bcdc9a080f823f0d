package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
