package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn                 func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn            func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn               func(ctx context.Context, userID int64) (models.User, error)
	findUserCredentialsByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserCredentialsByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn                 func(ctx context.Context, update models.UserUpdate) (models.User, error)
	updateUserPasswordFn         func(ctx context.Context, userID int64, passwordHash string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserCredentialsByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserCredentialsByEmailFn != nil {
		return m.findUserCredentialsByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserCredentialsByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserCredentialsByIDFn != nil {
		return m.findUserCredentialsByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, update)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updateUserPasswordFn != nil {
		return m.updateUserPasswordFn(ctx, userID, passwordHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ResetTokenRepository
// ─────────────────────────────────────────────

type mockResetTokenRepository struct {
	replaceResetTokenFn      func(ctx context.Context, token models.ResetToken) (models.ResetToken, error)
	findResetTokenByHashFn   func(ctx context.Context, tokenHash string) (models.ResetToken, error)
	deleteResetTokenByHashFn func(ctx context.Context, tokenHash string) error
}

func (m *mockResetTokenRepository) ReplaceResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	if m.replaceResetTokenFn != nil {
		return m.replaceResetTokenFn(ctx, token)
	}
	return token, nil
}

func (m *mockResetTokenRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error) {
	if m.findResetTokenByHashFn != nil {
		return m.findResetTokenByHashFn(ctx, tokenHash)
	}
	return models.ResetToken{}, nil
}

func (m *mockResetTokenRepository) DeleteResetTokenByHash(ctx context.Context, tokenHash string) error {
	if m.deleteResetTokenByHashFn != nil {
		return m.deleteResetTokenByHashFn(ctx, tokenHash)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: mail.Sender
// ─────────────────────────────────────────────

type mockMailSender struct {
	sendFn func(ctx context.Context, to, subject, body string) error
}

func (m *mockMailSender) Send(ctx context.Context, to, subject, body string) error {
	if m.sendFn != nil {
		return m.sendFn(ctx, to, subject, body)
	}
	return nil
}
