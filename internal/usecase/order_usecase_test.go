package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
)

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeTelegram, *fakeBus) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "bob@example.com", Username: "bob", Role: entity.RoleUser},
	}}
	carRepo := &fakeCarRepo{cars: map[string]*entity.Car{
		"car-7": {ID: "car-7", Brand: "Toyota", Model: "Camry", Year: 2021, Price: 1500000, Status: entity.CarStatusAvailable},
	}}
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	bot := &fakeTelegram{}
	bus := &fakeBus{}

	uc := NewOrderUseCase(orderRepo, carRepo, userRepo, NewOrderNotifier(bot, bus))
	return uc, orderRepo, bot, bus
}

func TestCreateOrderNotifiesExactlyOnce(t *testing.T) {
	uc, orderRepo, bot, bus := newOrderFixture()

	order, err := uc.Create(context.Background(), "u1", CreateOrderInput{CarID: "car-7"})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Len(t, orderRepo.orders, 1)

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0], "Новая заявка")
	assert.Contains(t, bot.sent[0], "bob")
	assert.Contains(t, bot.sent[0], "Toyota Camry")
	assert.Contains(t, bot.sent[0], "1500000 ₽")

	published := bus.events()
	require.Len(t, published, 1)
	assert.Equal(t, broadcast.GroupAdminNotifications, published[0].group)

	var event NewOrderEvent
	require.NoError(t, json.Unmarshal(published[0].event, &event))
	assert.Equal(t, "new_order", event.Type)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, "Toyota Camry (2021)", event.Car)
	assert.Equal(t, "bob", event.User)
}

func TestCreateOrderTelegramFailureStillPublishes(t *testing.T) {
	uc, _, bot, bus := newOrderFixture()
	bot.err = errors.New("telegram is down")

	order, err := uc.Create(context.Background(), "u1", CreateOrderInput{CarID: "car-7"})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	assert.Empty(t, bot.sent)
	assert.Len(t, bus.events(), 1)
}

func TestCreateOrderUnknownCarDoesNotNotify(t *testing.T) {
	uc, orderRepo, bot, bus := newOrderFixture()

	_, err := uc.Create(context.Background(), "u1", CreateOrderInput{CarID: "missing"})
	require.Error(t, err)

	assert.Empty(t, orderRepo.orders)
	assert.Empty(t, bot.sent)
	assert.Empty(t, bus.events())
}

func TestCreateOrderPersistFailureDoesNotNotify(t *testing.T) {
	uc, orderRepo, bot, bus := newOrderFixture()
	orderRepo.failing = true

	_, err := uc.Create(context.Background(), "u1", CreateOrderInput{CarID: "car-7"})
	require.Error(t, err)

	assert.Empty(t, bot.sent)
	assert.Empty(t, bus.events())
}

func TestUpdateStatusDoesNotNotify(t *testing.T) {
	uc, _, bot, bus := newOrderFixture()

	order, err := uc.Create(context.Background(), "u1", CreateOrderInput{CarID: "car-7"})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, updated.Status)

	// Only the creation round of notifications happened.
	assert.Len(t, bot.sent, 1)
	assert.Len(t, bus.events(), 1)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), "order-1", "shipped")
	assert.Error(t, err)
}

func TestOrderStatusLabelsAreLocalized(t *testing.T) {
	order := &entity.Order{Status: entity.OrderStatusNew, CreatedAt: time.Now()}
	assert.Equal(t, "Новая", order.StatusLabel())

	order.Status = entity.OrderStatusCompleted
	assert.Equal(t, "Завершена", order.StatusLabel())
}
