package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
)

type firestoreNewsRepository struct {
	client *firestore.Client
}

func NewFirestoreNewsRepository(client *firestore.Client) repository.NewsRepository {
	return &firestoreNewsRepository{client: client}
}

func (r *firestoreNewsRepository) Create(ctx context.Context, news *entity.News) error {
	if news.ID == "" {
		news.ID = r.client.Collection(newsCollection).NewDoc().ID
	}

	_, err := r.client.Collection(newsCollection).Doc(news.ID).Set(ctx, news)
	if err != nil {
		return errors.Internal("Failed to create news entry", err)
	}
	return nil
}

func (r *firestoreNewsRepository) GetByID(ctx context.Context, id string) (*entity.News, error) {
	doc, err := r.client.Collection(newsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("News entry", err)
		}
		return nil, errors.Internal("Failed to get news entry", err)
	}

	var news entity.News
	if err := doc.DataTo(&news); err != nil {
		return nil, errors.Internal("Failed to parse news data", err)
	}

	return &news, nil
}

func (r *firestoreNewsRepository) ListActive(ctx context.Context, limit, offset int) ([]*entity.News, int64, error) {
	query := r.client.Collection(newsCollection).
		Where("isActive", "==", true).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count news entries", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.News

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list news entries", err)
		}

		var news entity.News
		if err := doc.DataTo(&news); err != nil {
			return nil, 0, errors.Internal("Failed to parse news data", err)
		}
		items = append(items, &news)
	}

	return items, total, nil
}

func (r *firestoreNewsRepository) Update(ctx context.Context, news *entity.News) error {
	_, err := r.client.Collection(newsCollection).Doc(news.ID).Set(ctx, news)
	if err != nil {
		return errors.Internal("Failed to update news entry", err)
	}
	return nil
}
