package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth/jwt"
)

// ErrUserNotFound is returned by UserStore implementations when no user
// matches the lookup.
var ErrUserNotFound = errors.New("auth: user not found")

// UserRecord is the persisted form of a user account. Email and
// PasswordHash are nil for guests and OAuth-only accounts.
type UserRecord struct {
	ID           uuid.UUID
	Email        *string
	PasswordHash *string
	DisplayName  string
	UserType     string
	Metadata     []byte
}

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, rec UserRecord) error
	GetByEmail(ctx context.Context, email string) (UserRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (UserRecord, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// Service handles authentication and user management.
type Service struct {
	users    UserStore
	tokenMgr *jwt.Manager
	logger   zerolog.Logger
}

// NewService creates an authentication service.
func NewService(users UserStore, tokenCfg jwt.TokenConfig, logger zerolog.Logger) *Service {
	return &Service{
		users:    users,
		tokenMgr: jwt.NewManager(tokenCfg),
		logger:   logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register creates a new registered user account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, *TokenPair, error) {
	if req.Email == "" {
		return nil, nil, fmt.Errorf("email required")
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, nil, fmt.Errorf("email already registered")
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, nil, fmt.Errorf("lookup email: %w", err)
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	rec := UserRecord{
		ID:           uuid.New(),
		Email:        &req.Email,
		PasswordHash: &passwordHash,
		DisplayName:  req.DisplayName,
		UserType:     "registered",
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	user := recordToUser(rec)
	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", rec.ID.String()).Str("email", req.Email).Msg("user registered")
	return user, tokens, nil
}

// Login authenticates a user with email/password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, *TokenPair, error) {
	rec, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credentials")
	}
	if rec.PasswordHash == nil {
		return nil, nil, fmt.Errorf("invalid credentials")
	}
	if err := VerifyPassword(*rec.PasswordHash, req.Password); err != nil {
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	user := recordToUser(rec)
	_ = s.users.UpdateLastLogin(ctx, rec.ID)

	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", rec.ID.String()).Msg("user logged in")
	return user, tokens, nil
}

// CreateGuest creates an ephemeral guest account so teachers can try the
// generator before registering.
func (s *Service) CreateGuest(ctx context.Context, req GuestRequest) (*User, *TokenPair, error) {
	metadata, _ := json.Marshal(map[string]string{
		"device_fingerprint": req.DeviceFingerprint,
	})

	rec := UserRecord{
		ID:          uuid.New(),
		DisplayName: req.DisplayName,
		UserType:    "guest",
		Metadata:    metadata,
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("create guest: %w", err)
	}

	user := recordToUser(rec)
	tokens, err := s.generateTokenPair(*user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.logger.Info().Str("user_id", rec.ID.String()).Msg("guest created")
	return user, tokens, nil
}

// RefreshToken generates a new token pair from a refresh token.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenMgr.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	rec, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	return s.generateTokenPair(*recordToUser(rec))
}

// ValidateToken validates an access token and returns user claims.
func (s *Service) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return s.tokenMgr.ValidateAccessToken(tokenString)
}

// GetUser returns the stored account for a user id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	rec, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToUser(rec), nil
}

func recordToUser(rec UserRecord) *User {
	return &User{
		ID:          rec.ID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		UserType:    rec.UserType,
		IsGuest:     rec.UserType == "guest",
	}
}

func (s *Service) generateTokenPair(user User) (*TokenPair, error) {
	jwtUser := jwt.User{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		UserType:    user.UserType,
		IsGuest:     user.IsGuest,
	}

	accessToken, err := s.tokenMgr.GenerateAccessToken(jwtUser)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokenMgr.GenerateRefreshToken(jwtUser)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(1 * 3600),
	}, nil
}
