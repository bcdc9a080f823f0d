package usecase

import (
	"context"
	"time"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	carRepo   repository.CarRepository
	userRepo  repository.UserRepository
	notifier  *OrderNotifier
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	notifier *OrderNotifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		carRepo:   carRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

type CreateOrderInput struct {
	CarID   string `json:"car_id" validate:"required"`
	Comment string `json:"comment"`
}

// Create persists the purchase request, then hands it to the notifier.
// Notification failures never fail the created order.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	car, err := uc.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		UserID:    userID,
		CarID:     car.ID,
		Status:    entity.OrderStatusNew,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s created by %s for car %s", order.ID, user.Username, car.ID)
	uc.notifier.NotifyNewOrder(order, car, user)

	return order, nil
}

func (uc *OrderUseCase) ListMine(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUserID(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

// UpdateStatus is staff-only; the requester and car of an order never change.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	return uc.orderRepo.GetByID(ctx, orderID)
}
