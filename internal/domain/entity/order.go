package entity

import (
	"time"
)

const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// orderStatusLabels are the localized labels shown to staff, kept from the
// storefront's Russian UI.
var orderStatusLabels = map[string]string{
	OrderStatusNew:        "Новая",
	OrderStatusInProgress: "В работе",
	OrderStatusCompleted:  "Завершена",
	OrderStatusCancelled:  "Отменена",
}

// Order is a purchase request for a specific car. The requester and car
// association never change after creation; only staff move the status.
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	CarID     string    `json:"car_id" firestore:"carId"`
	Status    string    `json:"status" firestore:"status"`
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (o *Order) StatusLabel() string {
	if label, ok := orderStatusLabels[o.Status]; ok {
		return label
	}
	return o.Status
}

func ValidOrderStatus(status string) bool {
	_, ok := orderStatusLabels[status]
	return ok
}
