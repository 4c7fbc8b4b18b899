package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxPasswordLength guards against bcrypt's 72-byte input limit
	MaxPasswordLength = 72
	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 6
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The plaintext is never stored or logged; only the resulting hash leaves
// this package.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", errors.New("password too long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. It returns false for any mismatch or malformed hash without
// distinguishing the two.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
