package jwt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType represents the type of token.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims represents JWT claims.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenManager handles JWT token operations.
type TokenManager struct {
	secret          string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	issuer          string
}

// NewTokenManager creates a new token manager.
func NewTokenManager(secret string, accessTokenTTL, refreshTokenTTL time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret:          secret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		issuer:          issuer,
	}
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (tm *TokenManager) RefreshTokenTTL() time.Duration {
	return tm.refreshTokenTTL
}

// GenerateAccessToken generates a new access token.
func (tm *TokenManager) GenerateAccessToken(userID, sessionID uuid.UUID) (string, time.Time, error) {
	return tm.generate(userID, sessionID, AccessToken, tm.accessTokenTTL)
}

// GenerateRefreshToken generates a new refresh token.
func (tm *TokenManager) GenerateRefreshToken(userID, sessionID uuid.UUID) (string, time.Time, error) {
	return tm.generate(userID, sessionID, RefreshToken, tm.refreshTokenTTL)
}

func (tm *TokenManager) generate(userID, sessionID uuid.UUID, kind TokenType, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := &Claims{
		UserID:    userID,
		TokenType: kind,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    tm.issuer,
			Subject:   userID.String(),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tm.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns claims.
func (tm *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ValidateAccessToken validates specifically an access token.
func (tm *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := tm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != AccessToken {
		return nil, fmt.Errorf("not an access token")
	}

	return claims, nil
}

// ValidateRefreshToken validates specifically a refresh token.
func (tm *TokenManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := tm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != RefreshToken {
		return nil, fmt.Errorf("not a refresh token")
	}

	return claims, nil
}

// HashToken creates a hash of the token for storage.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
