package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	apperrors "github.com/Nekta161/autosalon/pkg/errors"
)

func newChatFixture() (*ChatUseCase, *fakeChatRepo, *fakeUserRepo, *fakeBus) {
	userRepo := &fakeUserRepo{
		users: map[string]*entity.User{
			"u1":      {ID: "u1", Username: "alice", AvatarURL: "https://cdn.example.com/alice.png"},
			"staff-1": {ID: "staff-1", Username: "manager", Role: entity.RoleStaff},
		},
	}
	userRepo.staff = userRepo.users["staff-1"]

	carRepo := &fakeCarRepo{cars: map[string]*entity.Car{
		"car-42": {ID: "car-42", Brand: "Lada", Model: "Vesta", Year: 2023, Status: entity.CarStatusAvailable},
	}}
	chatRepo := &fakeChatRepo{}
	bus := &fakeBus{}

	return NewChatUseCase(chatRepo, userRepo, carRepo, bus), chatRepo, userRepo, bus
}

func TestSendMessagePersistsThenBroadcasts(t *testing.T) {
	uc, chatRepo, _, bus := newChatFixture()

	event, err := uc.SendMessage(context.Background(), "u1", "car-42", "hello")
	require.NoError(t, err)

	require.Len(t, chatRepo.messages, 1)
	stored := chatRepo.messages[0]
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "staff-1", stored.AdminID)
	assert.Equal(t, "car-42", stored.CarID)
	assert.Equal(t, "hello", stored.Message)
	assert.False(t, stored.IsRead)

	published := bus.events()
	require.Len(t, published, 1)
	assert.Equal(t, "chat_car-42", published[0].group)

	var frame ChatEvent
	require.NoError(t, json.Unmarshal(published[0].event, &frame))
	assert.Equal(t, "hello", frame.Message)
	assert.Equal(t, "alice", frame.Username)
	require.NotNil(t, frame.Avatar)
	assert.Equal(t, "https://cdn.example.com/alice.png", *frame.Avatar)
	assert.Equal(t, event.Timestamp, frame.Timestamp)
}

func TestSendMessageWithoutStaffStoresEmptyRecipient(t *testing.T) {
	uc, chatRepo, userRepo, bus := newChatFixture()
	userRepo.staff = nil

	_, err := uc.SendMessage(context.Background(), "u1", "car-42", "anyone there?")
	require.NoError(t, err)

	require.Len(t, chatRepo.messages, 1)
	assert.Empty(t, chatRepo.messages[0].AdminID)
	assert.Len(t, bus.events(), 1)
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	uc, chatRepo, _, bus := newChatFixture()

	_, err := uc.SendMessage(context.Background(), "u1", "car-42", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	assert.Empty(t, chatRepo.messages)
	assert.Empty(t, bus.events())
}

func TestSendMessageUnknownCarDoesNotBroadcast(t *testing.T) {
	uc, chatRepo, _, bus := newChatFixture()

	_, err := uc.SendMessage(context.Background(), "u1", "missing", "hello")
	require.Error(t, err)

	assert.Empty(t, chatRepo.messages)
	assert.Empty(t, bus.events())
}

func TestSendMessageNullAvatarWhenUnset(t *testing.T) {
	uc, _, userRepo, bus := newChatFixture()
	userRepo.users["u1"].AvatarURL = ""

	_, err := uc.SendMessage(context.Background(), "u1", "car-42", "hi")
	require.NoError(t, err)

	published := bus.events()
	require.Len(t, published, 1)

	var frame ChatEvent
	require.NoError(t, json.Unmarshal(published[0].event, &frame))
	assert.Nil(t, frame.Avatar)
}

type roomListener struct {
	id     string
	frames [][]byte
}

func (l *roomListener) ID() string { return l.id }

func (l *roomListener) Deliver(event []byte) bool {
	l.frames = append(l.frames, event)
	return true
}

func TestSendMessageReachesAllRoomMembers(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Username: "alice"},
	}}
	carRepo := &fakeCarRepo{cars: map[string]*entity.Car{
		"42": {ID: "42", Brand: "Kia", Model: "Rio", Status: entity.CarStatusAvailable},
	}}
	bus := broadcast.NewMemoryBus()
	uc := NewChatUseCase(&fakeChatRepo{}, userRepo, carRepo, bus)

	inRoom1 := &roomListener{id: "m1"}
	inRoom2 := &roomListener{id: "m2"}
	elsewhere := &roomListener{id: "m3"}
	bus.Join(broadcast.ChatGroup("42"), inRoom1)
	bus.Join(broadcast.ChatGroup("42"), inRoom2)
	bus.Join(broadcast.ChatGroup("99"), elsewhere)

	_, err := uc.SendMessage(context.Background(), "u1", "42", "hello")
	require.NoError(t, err)

	for _, member := range []*roomListener{inRoom1, inRoom2} {
		require.Len(t, member.frames, 1)

		var frame ChatEvent
		require.NoError(t, json.Unmarshal(member.frames[0], &frame))
		assert.Equal(t, "hello", frame.Message)
		assert.Equal(t, "alice", frame.Username)
	}
	assert.Empty(t, elsewhere.frames)
}

func TestMarkRead(t *testing.T) {
	uc, chatRepo, _, _ := newChatFixture()

	_, err := uc.SendMessage(context.Background(), "u1", "car-42", "hello")
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(context.Background(), chatRepo.messages[0].ID))
	assert.True(t, chatRepo.messages[0].IsRead)
}
