package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)
}

type PasswordService interface {
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetSecret, newPassword string) (models.User, error)
}
