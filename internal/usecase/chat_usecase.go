package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/logger"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
	carRepo  repository.CarRepository
	bus      broadcast.Bus
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	carRepo repository.CarRepository,
	bus broadcast.Bus,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		carRepo:  carRepo,
		bus:      bus,
	}
}

// ChatEvent is the frame delivered to every member of a car's chat room.
// Avatar is null when the sender has not uploaded one.
type ChatEvent struct {
	Message   string  `json:"message"`
	Username  string  `json:"username"`
	Avatar    *string `json:"avatar"`
	Timestamp string  `json:"timestamp"`
}

// SendMessage persists the message and rebroadcasts it to the car's room.
// The recipient staff account is resolved at send time; when none exists
// the message is stored without one. Broadcast always happens after the
// write commits, never before.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, carID, text string) (*ChatEvent, error) {
	if text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.carRepo.GetByID(ctx, carID); err != nil {
		return nil, err
	}

	adminID := ""
	if staff, err := uc.userRepo.FirstStaff(ctx); err == nil {
		adminID = staff.ID
	}

	message := &entity.ChatMessage{
		UserID:    userID,
		AdminID:   adminID,
		CarID:     carID,
		Message:   text,
		CreatedAt: time.Now(),
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	event := &ChatEvent{
		Message:   text,
		Username:  user.Username,
		Timestamp: message.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if user.AvatarURL != "" {
		event.Avatar = &user.AvatarURL
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("chat: failed to marshal event for car %s: %v", carID, err)
		return event, nil
	}

	uc.bus.Publish(broadcast.ChatGroup(carID), data)

	return event, nil
}

// History returns a room's messages, oldest first.
func (uc *ChatUseCase) History(ctx context.Context, carID string, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	return uc.chatRepo.ListByCar(ctx, carID, limit, offset)
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, messageID string) error {
	return uc.chatRepo.MarkRead(ctx, messageID)
}
