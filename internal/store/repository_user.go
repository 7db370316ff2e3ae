package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and profile mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, profile defaults,
// CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all safe
// columns via a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.Photo, &created.Phone, &created.Bio, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: user was not created")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the safe projection of a user by e-mail.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, false, email)
}

// FindUserByID retrieves the safe projection of a user by identifier.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserByID", findUserByID, false, userID)
}

// FindUserCredentialsByEmail retrieves a user by e-mail including the
// password hash. Used only where password verification is about to happen.
func (r *userRepository) FindUserCredentialsByEmail(ctx context.Context, email string) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserCredentialsByEmail", findUserCredentialsByEmail, true, email)
}

// FindUserCredentialsByID retrieves a user by identifier including the
// password hash. Used only where password verification is about to happen.
func (r *userRepository) FindUserCredentialsByID(ctx context.Context, userID int64) (models.User, error) {
	return r.scanUser(ctx, "*userRepository.FindUserCredentialsByID", findUserCredentialsByID, true, userID)
}

// scanUser executes a single-row user query and scans the result. The
// withCredentials flag selects between the safe and the credential column
// sets.
func (r *userRepository) scanUser(ctx context.Context, funcName, query string, withCredentials bool, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	var err error
	if withCredentials {
		err = row.Scan(&found.UserID, &found.Name, &found.Email, &found.PasswordHash, &found.Photo, &found.Phone, &found.Bio, &found.CreatedAt, &found.UpdatedAt)
	} else {
		err = row.Scan(&found.UserID, &found.Name, &found.Email, &found.Photo, &found.Phone, &found.Bio, &found.CreatedAt, &found.UpdatedAt)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", funcName).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateUser applies the non-nil fields of update to the user's record and
// returns the resulting safe projection.
//
// Error handling:
//   - no matching user → [ErrNoUserWasFound].
//   - PostgreSQL unique_violation (23505), e.g. name or e-mail taken →
//     [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Msg("failed to build update query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.User
	if err := row.Scan(&updated.UserID, &updated.Name, &updated.Email, &updated.Photo, &updated.Phone, &updated.Bio, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", update.UserID).Msg("error: user was not updated")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// UpdateUserPassword replaces the stored password hash of the user.
// Returns [ErrNoUserWasFound] when no record matches.
func (r *userRepository) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserPassword").Int64("user_id", userID).Msg("error: password was not updated")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
