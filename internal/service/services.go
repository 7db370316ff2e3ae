package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mail"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	PasswordService PasswordService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, mailSender mail.Sender, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService:  NewProfileService(storages.UserRepository, logger),
		PasswordService: NewPasswordService(storages.UserRepository, storages.ResetTokenRepository, mailSender, cfg, logger),
	}
}
