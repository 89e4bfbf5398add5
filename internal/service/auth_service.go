package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
	"github.com/gstippagol/habit/internal/domain/service"
	"github.com/gstippagol/habit/internal/infrastructure/kafka"
	"github.com/gstippagol/habit/internal/infrastructure/redis"
	"github.com/gstippagol/habit/pkg/hash"
	pkgjwt "github.com/gstippagol/habit/pkg/jwt"
)

type authService struct {
	userRepo           repository.UserRepository
	sessionStorage     *redis.SessionStorage
	verificationTokens *redis.VerificationTokenStorage
	tokenManager       *pkgjwt.TokenManager
	producer           *kafka.Producer
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionStorage *redis.SessionStorage,
	verificationTokens *redis.VerificationTokenStorage,
	tokenManager *pkgjwt.TokenManager,
	producer *kafka.Producer,
) service.AuthService {
	return &authService{
		userRepo:           userRepo,
		sessionStorage:     sessionStorage,
		verificationTokens: verificationTokens,
		tokenManager:       tokenManager,
		producer:           producer,
	}
}

func (s *authService) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || username == "" {
		return nil, fmt.Errorf("email and username are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, entity.ErrEmailTaken
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	verificationToken, err := s.verificationTokens.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}
	if err := s.verificationTokens.StoreToken(ctx, verificationToken, user.ID.String()); err != nil {
		return nil, fmt.Errorf("failed to store verification token: %w", err)
	}

	event := &kafka.UserRegisteredEvent{
		UserID:            user.ID.String(),
		Email:             user.Email,
		Username:          user.Username,
		VerificationToken: verificationToken,
		CreatedAt:         user.CreatedAt,
	}
	if err := s.producer.PublishUserRegisteredEvent(ctx, event); err != nil {
		// Registration succeeded; the verification mail can be resent.
		log.Printf("Warning: failed to publish user registered event: %v", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*entity.User, *service.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, nil, entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, fmt.Errorf("account is deactivated")
	}

	if err := hash.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, entity.ErrInvalidCredentials
	}

	pair, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *authService) openSession(ctx context.Context, userID uuid.UUID) (*service.TokenPair, error) {
	sessionID := uuid.New()

	accessToken, _, err := s.tokenManager.GenerateAccessToken(userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenManager.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &entity.Session{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: pkgjwt.HashToken(refreshToken),
		CreatedAt: time.Now().UTC(),
		ExpiresAt: refreshExpiresAt,
	}

	if err := s.sessionStorage.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	claims, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	session, err := s.sessionStorage.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("session revoked or expired: %w", err)
	}

	if session.TokenHash != pkgjwt.HashToken(refreshToken) {
		return nil, fmt.Errorf("refresh token mismatch")
	}

	// Rotate: the old session is revoked and a fresh one opened.
	if err := s.sessionStorage.Delete(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return s.openSession(ctx, claims.UserID)
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}

	session, err := s.sessionStorage.Get(ctx, claims.SessionID)
	if err != nil {
		// Already gone; logout is idempotent.
		return nil
	}

	return s.sessionStorage.Delete(ctx, session)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := s.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid access token: %w", err)
	}

	if _, err := s.sessionStorage.Get(ctx, claims.SessionID); err != nil {
		return uuid.Nil, fmt.Errorf("session revoked or expired: %w", err)
	}

	return claims.UserID, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (*entity.User, error) {
	userIDStr, err := s.verificationTokens.GetUserIDByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid verification token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt verification token mapping: %w", err)
	}

	if err := s.userRepo.SetVerified(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.verificationTokens.DeleteToken(ctx, token); err != nil {
		log.Printf("Failed to delete verification token: %v", err)
	}

	return s.userRepo.GetByID(ctx, userID)
}
