package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository]. It manages single-use password-reset tokens in the
// "reset_tokens" table.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceResetToken deletes every existing token of the user and inserts the
// given one inside a single transaction, so at most one live token per user
// survives the call. Two concurrent calls for the same user serialize on the
// row delete; the last writer wins and no half-written record remains.
func (r *resetTokenRepository) ReplaceResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceResetToken").Int64("user_id", token.UserID).Msg("failed to begin transaction")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, deleteResetTokensByUserID, token.UserID); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceResetToken").Int64("user_id", token.UserID).Msg("failed to delete previous tokens")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	row := tx.QueryRowContext(ctx, createResetToken, token.UserID, token.TokenHash, token.CreatedAt, token.ExpiresAt)
	if err := row.Scan(&token.ID); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceResetToken").Int64("user_id", token.UserID).Msg("failed to insert token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceResetToken").Int64("user_id", token.UserID).Msg("failed to commit transaction")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return token, nil
}

// FindResetTokenByHash retrieves an unexpired token by its digest. The query
// filters on expires_at, so an expired token is indistinguishable from a
// missing one — both yield [ErrResetTokenNotFound].
func (r *resetTokenRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var found models.ResetToken
	row := r.db.QueryRowContext(ctx, findResetTokenByHash, tokenHash)

	if err := row.Scan(&found.ID, &found.UserID, &found.TokenHash, &found.CreatedAt, &found.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}

		log.Err(err).Str("func", "*resetTokenRepository.FindResetTokenByHash").Msg("error: scanning error")
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteResetTokenByHash removes a consumed token. Deleting an already
// removed token is not an error.
func (r *resetTokenRepository) DeleteResetTokenByHash(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteResetTokenByHash, tokenHash); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteResetTokenByHash").Msg("failed to delete token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
