package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
	"github.com/gstippagol/habit/internal/domain/service"
)

type habitService struct {
	habitRepo repository.HabitRepository

	// now is swapped out in tests
	now func() time.Time
}

// NewHabitService creates a new habit service.
func NewHabitService(habitRepo repository.HabitRepository) service.HabitService {
	return &habitService{
		habitRepo: habitRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *habitService) CreateHabit(ctx context.Context, ownerID uuid.UUID, title string) (*entity.Habit, error) {
	habit, err := entity.NewHabit(ownerID, title, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) GetHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error) {
	return s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
}

func (s *habitService) ListHabits(ctx context.Context, ownerID uuid.UUID, includeArchived bool) ([]*entity.Habit, error) {
	habits, err := s.habitRepo.GetByOwner(ctx, ownerID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	return habits, nil
}

func (s *habitService) ListBin(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error) {
	habits, err := s.habitRepo.GetDeletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bin: %w", err)
	}
	return habits, nil
}

func (s *habitService) UpdateTitle(ctx context.Context, habitID, ownerID uuid.UUID, title string) (*entity.Habit, error) {
	if title == "" {
		return nil, entity.ErrEmptyTitle
	}

	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}
	if habit.IsDeleted {
		return nil, entity.ErrHabitDeleted
	}

	habit.Title = title
	habit.UpdatedAt = s.now()

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) ToggleCompletion(ctx context.Context, habitID, ownerID uuid.UUID, dateKey string) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}
	if habit.IsDeleted {
		return nil, entity.ErrHabitDeleted
	}

	now := s.now()
	if err := habit.Toggle(dateKey, now); err != nil {
		return nil, err
	}
	habit.UpdatedAt = now

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to persist toggle: %w", err)
	}

	return habit, nil
}

func (s *habitService) SetArchived(ctx context.Context, habitID, ownerID uuid.UUID, archived bool) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := habit.SetArchived(archived, s.now()); err != nil {
		return nil, err
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update archive flag: %w", err)
	}

	return habit, nil
}

func (s *habitService) DeleteHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := habit.SoftDelete(s.now()); err != nil {
		return nil, err
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) RestoreHabit(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := habit.Restore(s.now()); err != nil {
		return nil, err
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to restore habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) PermanentDelete(ctx context.Context, habitID, ownerID uuid.UUID) error {
	habit, err := s.habitRepo.GetByIDAndOwner(ctx, habitID, ownerID)
	if err != nil {
		return err
	}

	// Only binned habits may be destroyed; active ones go through the
	// recycle bin first.
	if !habit.IsDeleted {
		return entity.ErrInvalidTransition
	}

	if err := s.habitRepo.Delete(ctx, habit.ID); err != nil {
		return fmt.Errorf("failed to permanently delete habit: %w", err)
	}

	return nil
}

func (s *habitService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -entity.RetentionDays)
	purged, err := s.habitRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired habits: %w", err)
	}
	return purged, nil
}
