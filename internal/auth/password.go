package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Teacher accounts carry student exam material, so hashing uses a cost
// above the bcrypt default. Raising it later re-hashes organically on
// login since VerifyPassword accepts hashes at any cost.
const (
	minPasswordLength = 8
	passwordHashCost  = 12
)

// HashPassword enforces the minimum length and returns a bcrypt hash
// suitable for storage in the users table.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against a stored hash.
// A mismatch returns ErrInvalidPassword; any other error means the
// stored hash itself is unusable.
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}
	return err
}
