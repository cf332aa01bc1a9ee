package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user (registered or guest).
type User struct {
	ID          uuid.UUID
	Email       *string
	DisplayName string
	UserType    string // "registered" or "guest"
	IsGuest     bool
}

// TokenPair holds access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterRequest for email/password registration.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest for email/password authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GuestRequest for creating ephemeral guest accounts.
type GuestRequest struct {
	DeviceFingerprint string `json:"device_fingerprint"`
	DisplayName       string `json:"display_name"`
}

// OAuthProvider constants.
const (
	OAuthProviderGoogle = "google"
)

// TokenConfig holds JWT signing configuration.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}
