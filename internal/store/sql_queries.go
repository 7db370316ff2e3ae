package store

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash) 
    VALUES ($1, $2, $3) 
    RETURNING user_id, name, email, photo, phone, bio, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, photo, phone, bio, created_at, updated_at 
    FROM users 
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, photo, phone, bio, created_at, updated_at 
    FROM users 
    WHERE user_id = $1;`

	findUserCredentialsByEmail = `SELECT user_id, name, email, password_hash, photo, phone, bio, created_at, updated_at 
    FROM users 
    WHERE email = $1;`

	findUserCredentialsByID = `SELECT user_id, name, email, password_hash, photo, phone, bio, created_at, updated_at 
    FROM users 
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users 
    SET password_hash = $1, updated_at = NOW() 
    WHERE user_id = $2;`

	deleteResetTokensByUserID = `DELETE FROM reset_tokens 
    WHERE user_id = $1;`

	createResetToken = `INSERT INTO reset_tokens (user_id, token_hash, created_at, expires_at) 
    VALUES ($1, $2, $3, $4) 
    RETURNING id;`

	findResetTokenByHash = `SELECT id, user_id, token_hash, created_at, expires_at 
    FROM reset_tokens 
    WHERE token_hash = $1 AND expires_at > NOW();`

	deleteResetTokenByHash = `DELETE FROM reset_tokens 
    WHERE token_hash = $1;`
)

// buildUpdateUserQuery builds the dynamic profile UPDATE: only the non-nil
// fields of update become SET clauses, updated_at is always refreshed, and
// the full safe projection is returned for the response.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix("RETURNING user_id, name, email, photo, phone, bio, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Photo != nil {
		builder = builder.Set("photo", *update.Photo)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
