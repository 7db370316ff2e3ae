package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password using the default cost. Because bcrypt embeds a fresh random salt,
// the same plaintext yields a different digest on every call.
//
// Returns the digest as a string, or an error if hashing fails (e.g. the
// plaintext exceeds bcrypt's 72-byte limit).
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt digest.
// The comparison is performed by bcrypt itself and is safe against timing
// attacks. It never panics: any mismatch or malformed digest yields false.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// GenerateResetSecret produces a new random reset-token secret as a
// hex-encoded string of 32 random bytes read from crypto/rand.
//
// The plaintext secret is embedded in the reset link e-mailed to the user;
// only its keyed digest (see HashString) is ever persisted.
func GenerateResetSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating reset secret: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike bcrypt password digests, the output is deterministic for a fixed
// key, which makes it suitable for reset-token lookups by digest.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
//
// This is an internal helper used by HashString.
// A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
