package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, carID string) (*entity.Favorite, error)
	Remove(ctx context.Context, userID, carID string) error
	IsFavorite(ctx context.Context, userID, carID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithCar, int64, error)
}
