package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetActive retrieves all active users (reminder and report scans)
	GetActive(ctx context.Context) ([]*entity.User, error)

	// Update persists the full user state
	Update(ctx context.Context, user *entity.User) error

	// SetLastReminderSent stamps the reminder rate-limit timestamp
	SetLastReminderSent(ctx context.Context, userID uuid.UUID, at time.Time) error

	// SetVerified marks the user's email as verified
	SetVerified(ctx context.Context, userID uuid.UUID) error
}

// NotificationRepository defines the interface for notification log persistence.
type NotificationRepository interface {
	// Create creates a new notification record
	Create(ctx context.Context, notification *entity.Notification) error

	// Update persists a status change
	Update(ctx context.Context, notification *entity.Notification) error

	// GetByUserID retrieves notifications for a user with pagination
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*entity.Notification, error)
}
