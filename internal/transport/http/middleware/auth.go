package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/service"
)

type contextKey string

const UserIDKey contextKey = "userID"

// AuthMiddleware validates access tokens before protected handlers run.
type AuthMiddleware struct {
	auth service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth validates JWT token from Authorization header
func (m *AuthMiddleware) Auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			http.Error(w, "Missing or invalid authorization header", http.StatusUnauthorized)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		userID, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), UserIDKey, userID),
		))
	}
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// GetUserID extracts user ID from request context
func GetUserID(r *http.Request) uuid.UUID {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
