package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	apperrors "github.com/Nekta161/autosalon/pkg/errors"
)

type fakeBus struct {
	mutex     sync.Mutex
	published []publishedEvent
}

type publishedEvent struct {
	group string
	event []byte
}

func (b *fakeBus) Join(group string, m broadcast.Member) {}

func (b *fakeBus) Leave(group string, memberID string) {}

func (b *fakeBus) Publish(group string, event []byte) {
	b.mutex.Lock()
	b.published = append(b.published, publishedEvent{group: group, event: event})
	b.mutex.Unlock()
}

func (b *fakeBus) events() []publishedEvent {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return append([]publishedEvent(nil), b.published...)
}

type fakeTelegram struct {
	err  error
	sent []string
}

func (t *fakeTelegram) Send(text string) error {
	if t.err != nil {
		return t.err
	}
	t.sent = append(t.sent, text)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
	staff *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FirstStaff(ctx context.Context) (*entity.User, error) {
	if r.staff == nil {
		return nil, apperrors.NotFound("Staff account", nil)
	}
	return r.staff, nil
}

type fakeCarRepo struct {
	cars map[string]*entity.Car
}

func (r *fakeCarRepo) Create(ctx context.Context, car *entity.Car) error {
	car.ID = fmt.Sprintf("car-%d", len(r.cars)+1)
	r.cars[car.ID] = car
	return nil
}

func (r *fakeCarRepo) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	if car, ok := r.cars[id]; ok {
		return car, nil
	}
	return nil, apperrors.NotFound("Car", nil)
}

func (r *fakeCarRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.Car, int64, error) {
	var out []*entity.Car
	for _, car := range r.cars {
		if car.Status == status {
			out = append(out, car)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCarRepo) Update(ctx context.Context, car *entity.Car) error {
	r.cars[car.ID] = car
	return nil
}

func (r *fakeCarRepo) Delete(ctx context.Context, id string) error {
	delete(r.cars, id)
	return nil
}

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	created int
	failing bool
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.failing {
		return errors.New("firestore unavailable")
	}
	r.created++
	order.ID = fmt.Sprintf("order-%d", r.created)
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if order, ok := r.orders[id]; ok {
		return order, nil
	}
	return nil, apperrors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return apperrors.NotFound("Order", nil)
	}
	order.Status = status
	return nil
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	message.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) ListByCar(ctx context.Context, carID string, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	var out []*entity.ChatMessage
	for _, message := range r.messages {
		if message.CarID == carID {
			out = append(out, message)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeChatRepo) MarkRead(ctx context.Context, messageID string) error {
	for _, message := range r.messages {
		if message.ID == messageID {
			message.IsRead = true
			return nil
		}
	}
	return apperrors.NotFound("Message", nil)
}
