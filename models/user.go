package models

import "time"

// Default values applied to profile fields when a user registers without
// providing them. They mirror the column defaults in the users migration.
const (
	DefaultPhoto = "https://res.cloudinary.com/dpcrhvlzq/image/upload/v1621863640/default_uomk2t.png"
	DefaultPhone = "+254"
	DefaultBio   = "bio"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential-related data, and public profile
// fields. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer at creation.
	UserID int64 `json:"id"`

	// Name is the unique display name of the user.
	Name string `json:"name"`

	// Email is the unique, trimmed e-mail address used during authentication
	// and for password-reset delivery.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// It MUST never contain plaintext and is excluded from every default
	// read; only the explicit credentials lookup populates it.
	PasswordHash string `json:"-"`

	// Photo is the URL of the user's avatar image.
	Photo string `json:"photo"`

	// Phone is the user's contact phone number.
	Phone string `json:"phone"`

	// Bio is a short free-form description, at most 250 characters.
	Bio string `json:"bio"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification,
	// maintained by the store on every update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries a partial profile modification. Nil pointer fields mean
// "keep the stored value"; non-nil fields replace it. This distinguishes an
// explicit empty-string update from "no change".
type UserUpdate struct {
	UserID int64
	Name   *string
	Email  *string
	Photo  *string
	Phone  *string
	Bio    *string
}
