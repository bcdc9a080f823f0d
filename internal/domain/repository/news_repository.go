package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type NewsRepository interface {
	Create(ctx context.Context, news *entity.News) error
	GetByID(ctx context.Context, id string) (*entity.News, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.News, int64, error)
	Update(ctx context.Context, news *entity.News) error
}
