package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types carried on the user-events topic.
const (
	EventTypeUserRegistered = "user.registered"
)

// Envelope wraps every event with its type and identity.
type Envelope struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// UserRegisteredEvent is published after a successful registration and
// drives the verification email.
type UserRegisteredEvent struct {
	UserID            string    `json:"user_id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	VerificationToken string    `json:"verification_token"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewEventID generates a unique event ID.
func NewEventID() string {
	return uuid.New().String()
}
