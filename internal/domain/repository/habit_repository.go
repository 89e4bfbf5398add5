package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence.
type HabitRepository interface {
	// Create creates a new habit
	Create(ctx context.Context, habit *entity.Habit) error

	// GetByID retrieves a habit by ID
	GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// GetByIDAndOwner retrieves a habit by ID and owner (for authorization)
	GetByIDAndOwner(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error)

	// GetByOwner retrieves all habits for a user, deleted ones excluded
	GetByOwner(ctx context.Context, ownerID uuid.UUID, includeArchived bool) ([]*entity.Habit, error)

	// GetDeletedByOwner retrieves the recycle bin contents for a user
	GetDeletedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error)

	// GetAllByOwner retrieves every habit regardless of lifecycle state
	// (historical reporting needs deleted habits too)
	GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error)

	// Update persists the full habit state
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete permanently removes a habit row
	Delete(ctx context.Context, habitID uuid.UUID) error

	// DeleteExpired permanently removes soft-deleted habits whose
	// deletion timestamp is older than the cutoff, returning the count
	DeleteExpired(ctx context.Context, deletedBefore time.Time) (int64, error)
}
