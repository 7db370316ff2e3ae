package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// UserRepository defines persistence operations for user accounts.
//
// All read methods except the credential lookups return users with an empty
// PasswordHash: the digest is fetched only where password verification is
// about to happen.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, profile defaults, timestamps) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the safe projection of a user by e-mail.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the safe projection of a user by identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserCredentialsByEmail retrieves a user by e-mail including the
	// password hash, for login verification.
	FindUserCredentialsByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserCredentialsByID retrieves a user by identifier including the
	// password hash, for change-password verification.
	FindUserCredentialsByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// resulting record. Absent fields keep their stored values.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// UpdateUserPassword replaces the stored password hash of the user.
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error
}

// ResetTokenRepository defines persistence operations for single-use
// password-reset tokens.
type ResetTokenRepository interface {
	// ReplaceResetToken deletes any existing tokens of the user and inserts
	// the given one in a single transaction, keeping at most one live token
	// per user.
	ReplaceResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error)

	// FindResetTokenByHash retrieves an unexpired token by its digest.
	// Expired or unknown digests yield ErrResetTokenNotFound.
	FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error)

	// DeleteResetTokenByHash removes a consumed token so it cannot be
	// replayed.
	DeleteResetTokenByHash(ctx context.Context, tokenHash string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
