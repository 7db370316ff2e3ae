package models

import "time"

// ResetToken is a single-use, time-limited credential that lets a user set a
// new password without being authenticated. Only the HMAC-SHA256 digest of the
// randomly generated secret is persisted; the plaintext secret leaves the
// server exactly once, embedded in the reset link e-mailed to the user.
type ResetToken struct {
	// ID is the internal unique identifier of the token row.
	ID int64 `json:"-"`

	// UserID references the account the token belongs to. It is a lookup
	// reference, not ownership: deleting a token never touches the user.
	UserID int64 `json:"-"`

	// TokenHash is the HMAC-SHA256 digest of the plaintext secret,
	// hex-encoded. Unique across all live tokens.
	TokenHash string `json:"-"`

	// CreatedAt is the timestamp when the token was issued.
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is CreatedAt plus the configured reset-token lifetime.
	// Tokens are unusable past this instant even if still present in the
	// database.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_tokens"
}

// Expired reports whether the token is past its expiry at the given instant.
func (t ResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
