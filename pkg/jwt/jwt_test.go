package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour, "habit-tracker")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager()
	userID, sessionID := uuid.New(), uuid.New()

	token, expiresAt, err := tm.GenerateAccessToken(userID, sessionID)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired at issue time")
	}

	claims, err := tm.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID || claims.SessionID != sessionID {
		t.Errorf("claims = %v/%v, want %v/%v", claims.UserID, claims.SessionID, userID, sessionID)
	}
}

func TestTokenTypeIsEnforced(t *testing.T) {
	tm := newTestManager()
	userID, sessionID := uuid.New(), uuid.New()

	refresh, _, err := tm.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if _, err := tm.ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if _, err := tm.ValidateRefreshToken(refresh); err != nil {
		t.Errorf("ValidateRefreshToken: %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.GenerateAccessToken(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewTokenManager("other-secret", 15*time.Minute, time.Hour, "habit-tracker")
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("HashToken not deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("HashToken collided on different inputs")
	}
}
