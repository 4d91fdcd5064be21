package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"timeledger/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a PasswordVerifier backed by bcrypt. The stored
// hash is expected in the standard bcrypt format produced by HashPassword.
func NewBcryptVerifier() domain.PasswordVerifier {
	return bcryptVerifier{}
}

func (bcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// HashPassword produces a bcrypt hash suitable for the AUTH_PASSWORD_HASH
// setting. Used by cmd/hashpw.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
