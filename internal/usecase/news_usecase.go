package usecase

import (
	"context"
	"time"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
)

type NewsUseCase struct {
	newsRepo repository.NewsRepository
}

func NewNewsUseCase(newsRepo repository.NewsRepository) *NewsUseCase {
	return &NewsUseCase{
		newsRepo: newsRepo,
	}
}

type NewsInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url"`
	IsActive *bool  `json:"is_active"`
}

func (uc *NewsUseCase) ListActive(ctx context.Context, limit, offset int) ([]*entity.News, int64, error) {
	return uc.newsRepo.ListActive(ctx, limit, offset)
}

func (uc *NewsUseCase) Create(ctx context.Context, input NewsInput) (*entity.News, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	news := &entity.News{
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		IsActive:  isActive,
		CreatedAt: time.Now(),
	}

	if err := uc.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}

	return news, nil
}

func (uc *NewsUseCase) Update(ctx context.Context, newsID string, input NewsInput) (*entity.News, error) {
	news, err := uc.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	news.Title = input.Title
	news.Content = input.Content
	news.ImageURL = input.ImageURL
	if input.IsActive != nil {
		news.IsActive = *input.IsActive
	}

	if err := uc.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}

	return news, nil
}
