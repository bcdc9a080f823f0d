package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
)

type firestoreCarRepository struct {
	client *firestore.Client
}

func NewFirestoreCarRepository(client *firestore.Client) repository.CarRepository {
	return &firestoreCarRepository{
		client: client,
	}
}

func (r *firestoreCarRepository) Create(ctx context.Context, car *entity.Car) error {
	if car.ID == "" {
		car.ID = r.client.Collection(carsCollection).NewDoc().ID
	}

	_, err := r.client.Collection(carsCollection).Doc(car.ID).Set(ctx, car)
	if err != nil {
		return errors.Internal("Failed to create car", err)
	}
	return nil
}

func (r *firestoreCarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	doc, err := r.client.Collection(carsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Car", err)
		}
		return nil, errors.Internal("Failed to get car", err)
	}

	var car entity.Car
	if err := doc.DataTo(&car); err != nil {
		return nil, errors.Internal("Failed to parse car data", err)
	}

	return &car, nil
}

func (r *firestoreCarRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Car, int64, error) {
	query := r.client.Collection(carsCollection).
		Where("status", "==", status).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count cars", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var cars []*entity.Car

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list cars", err)
		}

		var car entity.Car
		if err := doc.DataTo(&car); err != nil {
			return nil, 0, errors.Internal("Failed to parse car data", err)
		}
		cars = append(cars, &car)
	}

	return cars, total, nil
}

func (r *firestoreCarRepository) Update(ctx context.Context, car *entity.Car) error {
	_, err := r.client.Collection(carsCollection).Doc(car.ID).Set(ctx, car)
	if err != nil {
		return errors.Internal("Failed to update car", err)
	}
	return nil
}

func (r *firestoreCarRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(carsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete car", err)
	}
	return nil
}
