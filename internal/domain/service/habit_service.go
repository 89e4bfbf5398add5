package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
)

// HabitService defines the interface for habit business logic.
type HabitService interface {
	// CreateHabit creates a new habit for the user
	CreateHabit(ctx context.Context, ownerID uuid.UUID, title string) (*entity.Habit, error)

	// GetHabit retrieves a habit by ID, scoped to its owner
	GetHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error)

	// ListHabits retrieves the user's non-deleted habits
	ListHabits(ctx context.Context, ownerID uuid.UUID, includeArchived bool) ([]*entity.Habit, error)

	// ListBin retrieves the user's soft-deleted habits
	ListBin(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error)

	// UpdateTitle renames a habit
	UpdateTitle(ctx context.Context, habitID, ownerID uuid.UUID, title string) (*entity.Habit, error)

	// ToggleCompletion flips the completion state of one date within the
	// editable window and returns the habit with its streak recomputed
	ToggleCompletion(ctx context.Context, habitID, ownerID uuid.UUID, dateKey string) (*entity.Habit, error)

	// SetArchived archives or unarchives a habit
	SetArchived(ctx context.Context, habitID, ownerID uuid.UUID, archived bool) (*entity.Habit, error)

	// DeleteHabit soft deletes a habit into the recycle bin
	DeleteHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error)

	// RestoreHabit brings a deleted habit back to the active dashboard
	RestoreHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error)

	// PermanentDelete destroys a soft-deleted habit irreversibly
	PermanentDelete(ctx context.Context, habitID, ownerID uuid.UUID) error

	// PurgeExpired removes habits deleted more than the retention window
	// ago. Explicit trigger; there is no automatic sweep.
	PurgeExpired(ctx context.Context) (int64, error)
}
