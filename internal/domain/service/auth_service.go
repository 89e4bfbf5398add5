package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// TokenPair is the credential set returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService defines the interface for account and session management.
type AuthService interface {
	// Register creates an account and publishes a registration event for
	// the notification pipeline
	Register(ctx context.Context, email, username, password string) (*entity.User, error)

	// Login verifies credentials and opens a session
	Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error)

	// Refresh rotates the token pair for a valid refresh token
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes the session behind the access token
	Logout(ctx context.Context, accessToken string) error

	// Authenticate validates an access token and returns the user ID
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)

	// VerifyEmail marks the account verified for a valid token
	VerifyEmail(ctx context.Context, token string) (*entity.User, error)
}
