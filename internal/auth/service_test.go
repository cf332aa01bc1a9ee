package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examgenius/exam-platform/internal/auth/jwt"
)

type memoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]UserRecord
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]UserRecord)}
}

func (s *memoryUserStore) Create(_ context.Context, rec UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[rec.ID] = rec
	return nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.users {
		if rec.Email != nil && *rec.Email == email {
			return rec, nil
		}
	}
	return UserRecord{}, ErrUserNotFound
}

func (s *memoryUserStore) GetByID(_ context.Context, id uuid.UUID) (UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return UserRecord{}, ErrUserNotFound
	}
	return rec, nil
}

func (s *memoryUserStore) UpdateLastLogin(context.Context, uuid.UUID) error { return nil }

func testTokenConfig() jwt.TokenConfig {
	return jwt.TokenConfig{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, len(hash) > 20) // bcrypt hashes are long
}

func TestVerifyPassword(t *testing.T) {
	hash, _ := HashPassword("testpassword123")

	err := VerifyPassword(hash, "testpassword123")
	assert.NoError(t, err)

	err = VerifyPassword(hash, "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestPasswordTooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
	assert.Equal(t, ErrPasswordTooShort, err)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryUserStore(), testTokenConfig(), zerolog.Nop())

	user, tokens, err := svc.Register(ctx, RegisterRequest{
		Email:       "ama@example.com",
		Password:    "supersecret",
		DisplayName: "Ama",
	})
	require.NoError(t, err)
	assert.False(t, user.IsGuest)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// duplicate email rejected
	_, _, err = svc.Register(ctx, RegisterRequest{Email: "ama@example.com", Password: "supersecret"})
	assert.Error(t, err)

	// login with correct password
	loggedIn, tokens, err := svc.Login(ctx, LoginRequest{Email: "ama@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)

	// wrong password rejected without detail
	_, _, err = svc.Login(ctx, LoginRequest{Email: "ama@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestCreateGuest(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryUserStore(), testTokenConfig(), zerolog.Nop())

	user, tokens, err := svc.CreateGuest(ctx, GuestRequest{DisplayName: "Visitor"})
	require.NoError(t, err)
	assert.True(t, user.IsGuest)
	assert.Equal(t, "guest", user.UserType)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryUserStore(), testTokenConfig(), zerolog.Nop())

	user, tokens, err := svc.Register(ctx, RegisterRequest{
		Email:       "kofi@example.com",
		Password:    "supersecret",
		DisplayName: "Kofi",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Kofi", claims.DisplayName)

	// access token is not a valid refresh token
	_, err = svc.RefreshToken(ctx, tokens.AccessToken)
	assert.Error(t, err)

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewService(newMemoryUserStore(), testTokenConfig(), zerolog.Nop())
	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
