package repository

import (
	"context"

	"github.com/Nekta161/autosalon/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// FirstStaff returns the first account with staff privilege, ordered by
	// username so the result is stable. Returns NotFound when no staff
	// account exists yet.
	FirstStaff(ctx context.Context) (*entity.User, error)
}
