package usecase

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, carID string) (*entity.Favorite, error) {
	return uc.favoriteRepo.Add(ctx, userID, carID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, carID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, carID)
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string, page, pageSize int) ([]entity.FavoriteWithCar, int64, error) {
	offset := (page - 1) * pageSize
	return uc.favoriteRepo.ListByUser(ctx, userID, pageSize, offset)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, carID string) (bool, error) {
	return uc.favoriteRepo.IsFavorite(ctx, userID, carID)
}
