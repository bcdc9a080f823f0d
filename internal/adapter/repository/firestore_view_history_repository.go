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

type firestoreViewHistoryRepository struct {
	client *firestore.Client
}

func NewFirestoreViewHistoryRepository(client *firestore.Client) repository.ViewHistoryRepository {
	return &firestoreViewHistoryRepository{client: client}
}

func viewDocID(userID, carID string) string {
	return fmt.Sprintf("%s_%s", userID, carID)
}

func (r *firestoreViewHistoryRepository) Record(ctx context.Context, userID, carID string) error {
	view := entity.ViewHistory{
		ID:       viewDocID(userID, carID),
		UserID:   userID,
		CarID:    carID,
		ViewedAt: time.Now(),
	}

	_, err := r.client.Collection(viewHistoryCollection).Doc(view.ID).Set(ctx, view)
	if err != nil {
		return errors.Internal("Failed to record view", err)
	}
	return nil
}

func (r *firestoreViewHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.ViewHistoryWithCar, error) {
	query := r.client.Collection(viewHistoryCollection).
		Where("userId", "==", userID).
		OrderBy("viewedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get view history", err)
	}

	var views []entity.ViewHistory
	carIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		var view entity.ViewHistory
		if err := doc.DataTo(&view); err != nil {
			logger.Warn("Error parsing view record %s: %v", doc.Ref.ID, err)
			continue
		}
		views = append(views, view)
		carIDs = append(carIDs, view.CarID)
	}

	if len(carIDs) == 0 {
		return []entity.ViewHistoryWithCar{}, nil
	}

	docRefs := make([]*firestore.DocumentRef, len(carIDs))
	for i, id := range carIDs {
		docRefs[i] = r.client.Collection(carsCollection).Doc(id)
	}

	carDocs, err := r.client.GetAll(ctx, docRefs)
	if err != nil {
		return nil, errors.Internal("Failed to fetch viewed cars", err)
	}

	carMap := make(map[string]*entity.Car)
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

	var result []entity.ViewHistoryWithCar
	for _, view := range views {
		car, ok := carMap[view.CarID]
		if !ok {
			continue
		}
		result = append(result, entity.ViewHistoryWithCar{
			ID:       view.ID,
			UserID:   view.UserID,
			CarID:    view.CarID,
			Car:      car,
			ViewedAt: view.ViewedAt,
		})
	}

	return result, nil
}
