package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

type PhotoStorage interface {
	UploadPhoto(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
	DeletePhoto(ctx context.Context, fileURL string) error
}
