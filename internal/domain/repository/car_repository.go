package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	GetByID(ctx context.Context, id string) (*entity.Car, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Car, int64, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id string) error
}
