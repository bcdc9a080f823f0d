package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/internal/infrastructure/ratelimit"
	ws "github.com/Nekta161/autosalon/internal/infrastructure/websocket"
	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/errors"
	"github.com/Nekta161/autosalon/pkg/logger"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the storefront origin before exposing publicly
	},
}

type RealtimeHandler struct {
	bus          broadcast.Bus
	chatUseCase  *usecase.ChatUseCase
	userRepo     repository.UserRepository
	firebaseAuth usecase.FirebaseAuthClient
	limiter      *ratelimit.RateLimiter
}

func NewRealtimeHandler(
	bus broadcast.Bus,
	chatUseCase *usecase.ChatUseCase,
	userRepo repository.UserRepository,
	firebaseAuth usecase.FirebaseAuthClient,
) *RealtimeHandler {
	return &RealtimeHandler{
		bus:          bus,
		chatUseCase:  chatUseCase,
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		// 20 messages burst, one refill per 3s keeps one chatty user from
		// flooding a room.
		limiter: ratelimit.NewRateLimiter(20, 1, 3*time.Second),
	}
}

type inboundChatFrame struct {
	Message string `json:"message"`
}

// HandleChat serves /ws/chat/:carId. Anyone may connect and listen;
// messages from unauthenticated connections are dropped without an error
// frame. The connection stays open until the client side closes it.
func (h *RealtimeHandler) HandleChat(c echo.Context) error {
	carID := c.Param("carId")
	if carID == "" {
		return errors.BadRequest("Car ID is required", nil)
	}

	userID := h.authenticate(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(conn, h.bus, userID)
	client.Join(broadcast.ChatGroup(carID))

	go client.WritePump()
	go client.ReadPump(func(data []byte) {
		h.handleChatMessage(client, carID, data)
	})

	return nil
}

func (h *RealtimeHandler) handleChatMessage(client *ws.Client, carID string, data []byte) {
	if client.UserID == "" {
		// Silent drop for anonymous senders; they keep receiving.
		return
	}

	if !h.limiter.Allow(client.UserID) {
		logger.Warn("chat: rate limit hit for user %s in room %s", client.UserID, carID)
		return
	}

	var frame inboundChatFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		logger.Warn("chat: malformed frame from user %s: %v", client.UserID, err)
		return
	}

	if _, err := h.chatUseCase.SendMessage(context.Background(), client.UserID, carID, frame.Message); err != nil {
		logger.Error("chat: failed to send message from user %s in room %s: %v", client.UserID, carID, err)
	}
}

// HandleNotifications serves /ws/notifications for the staff dashboard.
// Non-staff callers are refused before any group membership happens.
func (h *RealtimeHandler) HandleNotifications(c echo.Context) error {
	userID := h.authenticate(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify staff privileges")
	}
	if !user.IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Staff privileges required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(conn, h.bus, userID)
	client.Join(broadcast.GroupAdminNotifications)

	go client.WritePump()
	go client.ReadPump(nil)

	return nil
}

// HandleCarUpdates serves /ws/cars. The car_updates group currently has no
// publisher; the endpoint keeps the delivery side wired for storefront
// pages that subscribe to it.
func (h *RealtimeHandler) HandleCarUpdates(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(conn, h.bus, h.authenticate(c))
	client.Join(broadcast.GroupCarUpdates)

	go client.WritePump()
	go client.ReadPump(nil)

	return nil
}

// authenticate resolves the caller's uid from the token query parameter
// (browsers cannot set headers on websocket dials) or the Authorization
// header. Returns empty for anonymous callers.
func (h *RealtimeHandler) authenticate(c echo.Context) string {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get("Authorization")
		if len(header) > 7 && header[:7] == "Bearer " {
			token = header[7:]
		}
	}
	if token == "" {
		return ""
	}

	uid, err := h.firebaseAuth.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return ""
	}
	return uid
}
