package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	ws "github.com/Nekta161/autosalon/internal/infrastructure/websocket"
	apperrors "github.com/Nekta161/autosalon/pkg/errors"
)

type stubAuth struct {
	tokens map[string]string
}

func (s *stubAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "", nil
}

func (s *stubAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	if uid, ok := s.tokens[token]; ok {
		return uid, nil
	}
	return "", apperrors.Unauthorized("Invalid token", nil)
}

func (s *stubAuth) SignInWithEmailPassword(email, password string) (string, error) {
	return "", nil
}

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.NotFound("User", nil)
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, apperrors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) FirstStaff(ctx context.Context) (*entity.User, error) {
	return nil, apperrors.NotFound("Staff account", nil)
}

func newNotificationsFixture() *RealtimeHandler {
	auth := &stubAuth{tokens: map[string]string{
		"user-token":  "u1",
		"staff-token": "staff-1",
	}}
	users := &stubUserRepo{users: map[string]*entity.User{
		"u1":      {ID: "u1", Role: entity.RoleUser},
		"staff-1": {ID: "staff-1", Role: entity.RoleStaff},
	}}
	return NewRealtimeHandler(broadcast.NewMemoryBus(), nil, users, auth)
}

func TestNotificationsRefusesAnonymous(t *testing.T) {
	h := newNotificationsFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleNotifications(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestNotificationsRefusesNonStaff(t *testing.T) {
	h := newNotificationsFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/notifications?token=user-token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleNotifications(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAuthenticateReadsQueryTokenFirst(t *testing.T) {
	h := newNotificationsFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/chat/42?token=staff-token", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Equal(t, "staff-1", h.authenticate(c))
}

func TestAuthenticateFallsBackToBearerHeader(t *testing.T) {
	h := newNotificationsFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/chat/42", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Equal(t, "u1", h.authenticate(c))
}

func TestChatMessageFromAnonymousIsDroppedSilently(t *testing.T) {
	h := newNotificationsFixture()

	// chatUseCase is nil here: reaching it for an anonymous sender would
	// panic, so returning cleanly proves the drop happens first.
	client := ws.NewClient(nil, broadcast.NewMemoryBus(), "")

	assert.NotPanics(t, func() {
		h.handleChatMessage(client, "42", []byte(`{"message":"hi"}`))
	})
}

func TestAuthenticateAnonymousWithBadToken(t *testing.T) {
	h := newNotificationsFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/chat/42?token=forged", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Empty(t, h.authenticate(c))
}
