package usecase

import (
	"context"
	"io"

	"github.com/Nekta161/autosalon/internal/domain/entity"
	"github.com/Nekta161/autosalon/internal/domain/repository"
	"github.com/Nekta161/autosalon/pkg/errors"
)

// profileViewLimit caps the recent-views list on the profile page.
const profileViewLimit = 10

type UserUseCase struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	viewRepo     repository.ViewHistoryRepository
	orderRepo    repository.OrderRepository
	storage      PhotoStorage
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	viewRepo repository.ViewHistoryRepository,
	orderRepo repository.OrderRepository,
	storage PhotoStorage,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		viewRepo:     viewRepo,
		orderRepo:    orderRepo,
		storage:      storage,
	}
}

type Profile struct {
	User        *entity.User                `json:"user"`
	Favorites   []entity.FavoriteWithCar    `json:"favorites"`
	RecentViews []entity.ViewHistoryWithCar `json:"recent_views"`
	Orders      []*entity.Order             `json:"orders"`
}

type UpdateProfileInput struct {
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	TelegramChatID string `json:"telegram_chat_id"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites, _, err := uc.favoriteRepo.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}

	views, err := uc.viewRepo.ListByUser(ctx, userID, profileViewLimit)
	if err != nil {
		return nil, err
	}

	orders, _, err := uc.orderRepo.ListByUserID(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:        user,
		Favorites:   favorites,
		RecentViews: views,
		Orders:      orders,
	}, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.TelegramChatID = input.TelegramChatID

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UploadAvatar(ctx context.Context, userID string, file io.Reader, contentType string) (*entity.User, error) {
	if uc.storage == nil {
		return nil, errors.Internal("Photo storage is not configured", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := uc.storage.UploadPhoto(ctx, file, contentType, "avatars")
	if err != nil {
		return nil, errors.Internal("Failed to upload avatar", err)
	}

	user.AvatarURL = url
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, userID)
}
