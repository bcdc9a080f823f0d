package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type ViewHistoryRepository interface {
	// Record upserts the user+car view, refreshing ViewedAt on repeats.
	Record(ctx context.Context, userID, carID string) error

	ListByUser(ctx context.Context, userID string, limit int) ([]entity.ViewHistoryWithCar, error)
}
