package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = r.client.Collection(chatMessagesCollection).NewDoc().ID
	}

	_, err := r.client.Collection(chatMessagesCollection).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to save chat message", err)
	}
	return nil
}

func (r *firestoreChatRepository) ListByCar(ctx context.Context, carID string, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	query := r.client.Collection(chatMessagesCollection).
		Where("carId", "==", carID).
		OrderBy("createdAt", firestore.Asc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count chat messages", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.ChatMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list chat messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse chat message", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreChatRepository) MarkRead(ctx context.Context, messageID string) error {
	_, err := r.client.Collection(chatMessagesCollection).Doc(messageID).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
		{Path: "readAt", Value: time.Now()},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Chat message", err)
		}
		return errors.Internal("Failed to mark message as read", err)
	}
	return nil
}
