package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
)

const habitColumns = `
	id, owner_id, title, completed_dates, streak,
	is_archived, is_deleted, deleted_at, created_at, updated_at
`

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository.
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (
			id, owner_id, title, completed_dates, streak,
			is_archived, is_deleted, deleted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		habit.ID, habit.OwnerID, habit.Title, habit.CompletedDates, habit.Streak,
		habit.IsArchived, habit.IsDeleted, habit.DeletedAt, habit.CreatedAt, habit.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	habit := &entity.Habit{}
	err := row.Scan(
		&habit.ID, &habit.OwnerID, &habit.Title, &habit.CompletedDates, &habit.Streak,
		&habit.IsArchived, &habit.IsDeleted, &habit.DeletedAt, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if habit.CompletedDates == nil {
		habit.CompletedDates = []string{}
	}
	return habit, nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) GetByIDAndOwner(ctx context.Context, habitID, ownerID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1 AND owner_id = $2`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrHabitNotFound
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) queryHabits(ctx context.Context, query string, args ...any) ([]*entity.Habit, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*entity.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (r *habitRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, includeArchived bool) ([]*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE owner_id = $1 AND is_deleted = FALSE`
	if !includeArchived {
		query += " AND is_archived = FALSE"
	}
	query += " ORDER BY created_at DESC"

	return r.queryHabits(ctx, query, ownerID)
}

func (r *habitRepository) GetDeletedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error) {
	query := `SELECT ` + habitColumns + `
		FROM habits
		WHERE owner_id = $1 AND is_deleted = TRUE
		ORDER BY deleted_at DESC`

	return r.queryHabits(ctx, query, ownerID)
}

func (r *habitRepository) GetAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE owner_id = $1 ORDER BY created_at DESC`

	return r.queryHabits(ctx, query, ownerID)
}

func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `
		UPDATE habits SET
			title = $1,
			completed_dates = $2,
			streak = $3,
			is_archived = $4,
			is_deleted = $5,
			deleted_at = $6,
			updated_at = $7
		WHERE id = $8
	`

	result, err := r.pool.Exec(ctx, query,
		habit.Title, habit.CompletedDates, habit.Streak,
		habit.IsArchived, habit.IsDeleted, habit.DeletedAt, habit.UpdatedAt,
		habit.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(ctx context.Context, habitID uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM habits WHERE id = $1`, habitID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) DeleteExpired(ctx context.Context, deletedBefore time.Time) (int64, error) {
	query := `DELETE FROM habits WHERE is_deleted = TRUE AND deleted_at < $1`

	result, err := r.pool.Exec(ctx, query, deletedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired habits: %w", err)
	}

	return result.RowsAffected(), nil
}
