package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/Nekta161/autosalon/internal/adapter/api"
	"github.com/Nekta161/autosalon/internal/adapter/api/handler"
	apimiddleware "github.com/Nekta161/autosalon/internal/adapter/api/middleware"
	"github.com/Nekta161/autosalon/internal/adapter/api/router"
	"github.com/Nekta161/autosalon/internal/adapter/repository"
	"github.com/Nekta161/autosalon/internal/infrastructure/broadcast"
	"github.com/Nekta161/autosalon/internal/infrastructure/firebase"
	"github.com/Nekta161/autosalon/internal/infrastructure/storage"
	"github.com/Nekta161/autosalon/internal/infrastructure/telegram"
	"github.com/Nekta161/autosalon/internal/usecase"
	"github.com/Nekta161/autosalon/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Photo storage is optional; uploads return an error when it is absent.
	var photoStorage usecase.PhotoStorage
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		photoStorage = storageClient
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	carRepo := repository.NewFirestoreCarRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	viewRepo := repository.NewFirestoreViewHistoryRepository(firestoreClient)
	newsRepo := repository.NewFirestoreNewsRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	var bus broadcast.Bus
	switch cfg.BroadcastBackend {
	case "nats":
		natsBus, err := broadcast.NewNATSBus(cfg.NatsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS at %s: %v", cfg.NatsURL, err)
		}
		defer natsBus.Close()
		bus = natsBus
	default:
		bus = broadcast.NewMemoryBus()
	}

	var botNotifier telegram.Notifier = telegram.NoopNotifier{}
	if cfg.TelegramBotToken != "" {
		notifier, err := telegram.NewBotNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Telegram bot disabled: %v", err)
		} else {
			botNotifier = notifier
		}
	}

	orderNotifier := usecase.NewOrderNotifier(botNotifier, bus)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, favoriteRepo, viewRepo, orderRepo, photoStorage)
	carUseCase := usecase.NewCarUseCase(carRepo, viewRepo, photoStorage)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, carRepo, userRepo, orderNotifier)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, carRepo, bus)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo)
	newsUseCase := usecase.NewNewsUseCase(newsRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		carUseCase,
		orderUseCase,
		chatUseCase,
		favoriteUseCase,
		newsUseCase,
		bus,
		userRepo,
		firebaseAuthClient,
	)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	staffMiddleware := apimiddleware.NewStaffMiddleware(userRepo)

	router.Setup(e, authMiddleware, staffMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
