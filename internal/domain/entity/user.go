package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`

	IsActive   bool `json:"isActive"`
	IsAdmin    bool `json:"isAdmin"`
	IsVerified bool `json:"isVerified"`

	// LastReminderSent rate-limits the inactivity nudges: at most one
	// every three days, and the starter nudge only once.
	LastReminderSent *time.Time `json:"lastReminderSent,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session represents an authenticated session backing a refresh token.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"token_hash"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
