package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/logger"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

// Composite doc IDs make user+car unique without a transaction.
func favoriteDocID(userID, carID string) string {
	return fmt.Sprintf("%s_%s", userID, carID)
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, carID string) (*entity.Favorite, error) {
	exists, err := r.IsFavorite(ctx, userID, carID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Car already in favorites")
	}

	if _, err := r.client.Collection(carsCollection).Doc(carID).Get(ctx); err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Car", err)
		}
		return nil, errors.Internal("Failed to check car", err)
	}

	favorite := entity.Favorite{
		ID:      favoriteDocID(userID, carID),
		UserID:  userID,
		CarID:   carID,
		AddedAt: time.Now(),
	}

	_, err = r.client.Collection(favoritesCollection).Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, carID string) error {
	exists, err := r.IsFavorite(ctx, userID, carID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Favorite", nil)
	}

	_, err = r.client.Collection(favoritesCollection).Doc(favoriteDocID(userID, carID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) IsFavorite(ctx context.Context, userID, carID string) (bool, error) {
	doc, err := r.client.Collection(favoritesCollection).Doc(favoriteDocID(userID, carID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}
	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithCar, int64, error) {
	query := r.client.Collection(favoritesCollection).
		Where("userId", "==", userID).
		OrderBy("addedAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get favorites", err)
	}

	var favorites []entity.Favorite
	carIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			logger.Warn("Error parsing favorite %s: %v", doc.Ref.ID, err)
			continue
		}
		favorites = append(favorites, favorite)
		carIDs = append(carIDs, favorite.CarID)
	}

	if len(carIDs) == 0 {
		return []entity.FavoriteWithCar{}, 0, nil
	}

	carMap, err := r.fetchCars(ctx, carIDs)
	if err != nil {
		return nil, 0, err
	}

	var result []entity.FavoriteWithCar
	var count int64
	for _, favorite := range favorites {
		car, ok := carMap[favorite.CarID]
		if !ok {
			continue
		}
		count++
		if int(count) > offset && (limit <= 0 || len(result) < limit) {
			result = append(result, entity.FavoriteWithCar{
				ID:      favorite.ID,
				UserID:  favorite.UserID,
				CarID:   favorite.CarID,
				Car:     car,
				AddedAt: favorite.AddedAt,
			})
		}
	}

	return result, count, nil
}

// fetchCars batch-reads car documents, 30 per call per Firestore limits.
func (r *firestoreFavoriteRepository) fetchCars(ctx context.Context, carIDs []string) (map[string]*entity.Car, error) {
	carMap := make(map[string]*entity.Car)

	for i := 0; i < len(carIDs); i += 30 {
		end := i + 30
		if end > len(carIDs) {
			end = len(carIDs)
		}

		batchIDs := carIDs[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection(carsCollection).Doc(id)
		}

		carDocs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			logger.Warn("Error batch fetching cars: %v", err)
			continue
		}

		for _, doc := range carDocs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var car entity.Car
			if err := doc.DataTo(&car); err != nil {
				continue
			}
			carMap[doc.Ref.ID] = &car
		}
	}

	return carMap, nil
}
