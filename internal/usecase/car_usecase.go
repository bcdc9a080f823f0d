package usecase

import (
	"context"
	"io"
	"time"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/logger"
)

type CarUseCase struct {
	carRepo  repository.CarRepository
	viewRepo repository.ViewHistoryRepository
	storage  PhotoStorage
}

func NewCarUseCase(
	carRepo repository.CarRepository,
	viewRepo repository.ViewHistoryRepository,
	storage PhotoStorage,
) *CarUseCase {
	return &CarUseCase{
		carRepo:  carRepo,
		viewRepo: viewRepo,
		storage:  storage,
	}
}

type CarInput struct {
	Brand       string  `json:"brand" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	Year        int     `json:"year" validate:"required,min=1950"`
	Mileage     int     `json:"mileage" validate:"min=0"`
	Color       string  `json:"color" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=available sold"`
}

// ListAvailable lists cars on sale, newest first. A signed-in viewer gets a
// view-history record per listed car, matching the storefront behavior of
// marking everything shown on the home page as seen.
func (uc *CarUseCase) ListAvailable(ctx context.Context, viewerID string, limit, offset int) ([]*entity.Car, int64, error) {
	cars, total, err := uc.carRepo.ListByStatus(ctx, entity.CarStatusAvailable, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if viewerID != "" {
		for _, car := range cars {
			if err := uc.viewRepo.Record(ctx, viewerID, car.ID); err != nil {
				logger.Warn("Failed to record view of car %s for user %s: %v", car.ID, viewerID, err)
			}
		}
	}

	return cars, total, nil
}

func (uc *CarUseCase) GetByID(ctx context.Context, viewerID, carID string) (*entity.Car, error) {
	car, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if viewerID != "" {
		if err := uc.viewRepo.Record(ctx, viewerID, car.ID); err != nil {
			logger.Warn("Failed to record view of car %s for user %s: %v", car.ID, viewerID, err)
		}
	}

	return car, nil
}

func (uc *CarUseCase) Create(ctx context.Context, input CarInput) (*entity.Car, error) {
	status := input.Status
	if status == "" {
		status = entity.CarStatusAvailable
	}

	car := &entity.Car{
		Brand:       input.Brand,
		Model:       input.Model,
		Year:        input.Year,
		Mileage:     input.Mileage,
		Color:       input.Color,
		Price:       input.Price,
		Description: input.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := uc.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

func (uc *CarUseCase) Update(ctx context.Context, carID string, input CarInput) (*entity.Car, error) {
	car, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	car.Brand = input.Brand
	car.Model = input.Model
	car.Year = input.Year
	car.Mileage = input.Mileage
	car.Color = input.Color
	car.Price = input.Price
	car.Description = input.Description
	if input.Status != "" {
		car.Status = input.Status
	}

	if err := uc.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}

func (uc *CarUseCase) Delete(ctx context.Context, carID string) error {
	car, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return err
	}

	if err := uc.carRepo.Delete(ctx, carID); err != nil {
		return err
	}

	// The photo is an orphan once the listing is gone; removal is
	// best-effort.
	if car.PhotoURL != "" && uc.storage != nil {
		if err := uc.storage.DeletePhoto(ctx, car.PhotoURL); err != nil {
			logger.Warn("Failed to delete photo for car %s: %v", carID, err)
		}
	}

	return nil
}

// UploadPhoto stores a car photo and sets its URL on the car.
func (uc *CarUseCase) UploadPhoto(ctx context.Context, carID string, file io.Reader, contentType string) (*entity.Car, error) {
	if uc.storage == nil {
		return nil, errors.Internal("Photo storage is not configured", nil)
	}

	car, err := uc.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	url, err := uc.storage.UploadPhoto(ctx, file, contentType, "cars")
	if err != nil {
		return nil, errors.Internal("Failed to upload car photo", err)
	}

	car.PhotoURL = url
	if err := uc.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	return car, nil
}
