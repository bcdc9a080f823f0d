package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/internal/infrastructure/telegram"
	"github.com/Nekta161/autosalon/pkg/logger"
)

// OrderNotifier fans a freshly persisted order out to staff: a Telegram
// alert and a dashboard event. The two deliveries are independent
// best-effort side effects; neither failure blocks the other, and neither
// surfaces to the request that created the order.
type OrderNotifier struct {
	bot telegram.Notifier
	bus broadcast.Bus
}

func NewOrderNotifier(bot telegram.Notifier, bus broadcast.Bus) *OrderNotifier {
	return &OrderNotifier{
		bot: bot,
		bus: bus,
	}
}

// NewOrderEvent is the frame delivered to admin dashboard connections.
type NewOrderEvent struct {
	Type      string `json:"type"`
	OrderID   string `json:"order_id"`
	Car       string `json:"car"`
	User      string `json:"user"`
	CreatedAt string `json:"created_at"`
}

// NotifyNewOrder must be called exactly once, after the order write has
// committed. Status updates do not notify.
func (n *OrderNotifier) NotifyNewOrder(order *entity.Order, car *entity.Car, user *entity.User) {
	if err := n.bot.Send(formatOrderAlert(order, car, user)); err != nil {
		logger.Error("order notifier: telegram alert for order %s failed: %v", order.ID, err)
	}

	event, err := json.Marshal(NewOrderEvent{
		Type:      "new_order",
		OrderID:   order.ID,
		Car:       car.Label(),
		User:      user.Username,
		CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		logger.Error("order notifier: failed to marshal event for order %s: %v", order.ID, err)
		return
	}

	n.bus.Publish(broadcast.GroupAdminNotifications, event)
}

func formatOrderAlert(order *entity.Order, car *entity.Car, user *entity.User) string {
	return fmt.Sprintf(
		"🚨 *Новая заявка!*\n"+
			"ID: `%s`\n"+
			"Пользователь: `%s`\n"+
			"Авто: `%s %s`\n"+
			"Цена: `%s ₽`\n"+
			"Статус: `%s`\n"+
			"Создана: `%s`",
		order.ID,
		user.Username,
		car.Brand, car.Model,
		strconv.FormatFloat(car.Price, 'f', -1, 64),
		order.StatusLabel(),
		order.CreatedAt.Format("2006-01-02 15:04"),
	)
}
