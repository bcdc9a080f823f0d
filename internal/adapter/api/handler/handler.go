package handler

import (
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/internal/infrastructure/firebase"
	"github.com/Nekta161/autosalon/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	carHandler      *CarHandler
	orderHandler    *OrderHandler
	chatHandler     *ChatHandler
	favoriteHandler *FavoriteHandler
	newsHandler     *NewsHandler
	realtimeHandler *RealtimeHandler
	healthHandler   *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	carUseCase *usecase.CarUseCase,
	orderUseCase *usecase.OrderUseCase,
	chatUseCase *usecase.ChatUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	newsUseCase *usecase.NewsUseCase,
	bus broadcast.Bus,
	userRepo repository.UserRepository,
	firebaseAuth *firebase.FirebaseAuthClient,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	carHandler = NewCarHandler(carUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	newsHandler = NewNewsHandler(newsUseCase)
	realtimeHandler = NewRealtimeHandler(bus, chatUseCase, userRepo, firebaseAuth)
	healthHandler = NewHealthHandler(firebaseAuth)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCarHandler() *CarHandler {
	return carHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetNewsHandler() *NewsHandler {
	return newsHandler
}

func GetRealtimeHandler() *RealtimeHandler {
	return realtimeHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
