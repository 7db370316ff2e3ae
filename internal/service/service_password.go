package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mail"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// passwordService is the concrete implementation of PasswordService. It
// covers in-session password changes and the e-mail based forgot/reset flow.
//
// Reset tokens are stored only as keyed HMAC-SHA256 digests; the plain secret
// exists solely inside the reset link e-mailed to the user. A user has at
// most one live reset token, and a consumed token is deleted so the link
// cannot be replayed.
type passwordService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	mailSender           mail.Sender

	// resetTokenHashKey keys the HMAC digest of reset secrets.
	resetTokenHashKey string

	// resetTokenDuration is the validity window of a reset link.
	resetTokenDuration time.Duration

	// frontendBaseURL is the origin the reset link points at.
	frontendBaseURL string

	logger *logger.Logger
}

func NewPasswordService(
	userRepository store.UserRepository,
	resetTokenRepository store.ResetTokenRepository,
	mailSender mail.Sender,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) PasswordService {
	return &passwordService{
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		mailSender:           mailSender,
		resetTokenHashKey:    cfg.App.ResetTokenHashKey,
		resetTokenDuration:   cfg.App.ResetTokenDuration,
		frontendBaseURL:      strings.TrimRight(cfg.Frontend.BaseURL, "/"),
		logger:               logger,
	}
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one.
//
// Returns the user's safe record (so the caller can issue a fresh session
// token) or:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrPasswordTooShort if the new password is shorter than minPasswordLength.
//   - ErrWrongPassword if the current password does not match.
//   - A wrapped storage error if the account cannot be loaded or updated.
func (p *passwordService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if len(newPassword) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	user, err := p.userRepository.FindUserCredentialsByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !utils.CheckPassword(currentPassword, user.PasswordHash) {
		log.Error().Int64("user_id", userID).Msg("wrong current password")
		return models.User{}, ErrWrongPassword
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := p.userRepository.UpdateUserPassword(ctx, userID, newHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// ForgotPassword starts the e-mail reset flow: it generates a fresh reset
// secret, stores its digest (replacing any previous token of the user), and
// e-mails the reset link. Delivery is awaited; if it fails the stored token
// is removed so no orphaned digest points at an e-mail that never arrived.
//
// Returns nil on success or:
//   - A wrapped storage error if the account lookup fails (see
//     store.ErrNoUserWasFound for unknown e-mails).
//   - ErrEmailDeliveryFailed if the message could not be sent.
func (p *passwordService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	secret, err := utils.GenerateResetSecret()
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset secret generation failed")
		return fmt.Errorf("reset secret generation failed: %w", err)
	}

	now := time.Now()
	tokenHash := utils.HashString(secret, p.resetTokenHashKey)

	if _, err := p.resetTokenRepository.ReplaceResetToken(ctx, models.ResetToken{
		UserID:    user.UserID,
		TokenHash: tokenHash,
		CreatedAt: now,
		ExpiresAt: now.Add(p.resetTokenDuration),
	}); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset token storage failed")
		return fmt.Errorf("reset token storage failed: %w", err)
	}

	resetURL := fmt.Sprintf("%s/resetpassword/%s", p.frontendBaseURL, secret)
	subject, body := mail.ResetPasswordEmail(resetURL)

	if err := p.mailSender.Send(ctx, user.Email, subject, body); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset email delivery failed")

		if deleteErr := p.resetTokenRepository.DeleteResetTokenByHash(ctx, tokenHash); deleteErr != nil {
			log.Err(deleteErr).Int64("user_id", user.UserID).Msg("orphaned reset token cleanup failed")
		}

		return ErrEmailDeliveryFailed
	}

	return nil
}

// ResetPassword completes the e-mail reset flow: it resolves the plain reset
// secret to a stored digest, checks the validity window, replaces the
// account password, and deletes the consumed token.
//
// Returns the user's safe record (so the caller can log the user in) or:
//   - ErrPasswordTooShort if the new password is shorter than minPasswordLength.
//   - ErrResetTokenInvalidOrExpired when no live token matches the secret.
//   - A wrapped storage error if the password update fails.
func (p *passwordService) ResetPassword(ctx context.Context, resetSecret, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if resetSecret == "" {
		return models.User{}, ErrResetTokenInvalidOrExpired
	}
	if len(newPassword) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	tokenHash := utils.HashString(resetSecret, p.resetTokenHashKey)

	token, err := p.resetTokenRepository.FindResetTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return models.User{}, ErrResetTokenInvalidOrExpired
		}

		log.Err(err).Msg("reset token lookup failed")
		return models.User{}, fmt.Errorf("reset token lookup failed: %w", err)
	}

	if token.Expired(time.Now()) {
		return models.User{}, ErrResetTokenInvalidOrExpired
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := p.userRepository.UpdateUserPassword(ctx, token.UserID, newHash); err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	if err := p.resetTokenRepository.DeleteResetTokenByHash(ctx, tokenHash); err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("consumed reset token cleanup failed")
	}

	user, err := p.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
