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

const userColumns = `
	id, email, username, password_hash,
	is_active, is_admin, is_verified, last_reminder_sent,
	created_at, updated_at
`

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (
			id, email, username, password_hash,
			is_active, is_admin, is_verified, last_reminder_sent,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash,
		user.IsActive, user.IsAdmin, user.IsVerified, user.LastReminderSent,
		user.CreatedAt, user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.IsActive, &user.IsAdmin, &user.IsVerified, &user.LastReminderSent,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetActive(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET
			email = $1,
			username = $2,
			password_hash = $3,
			is_active = $4,
			is_admin = $5,
			is_verified = $6,
			last_reminder_sent = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.pool.Exec(ctx, query,
		user.Email, user.Username, user.PasswordHash,
		user.IsActive, user.IsAdmin, user.IsVerified, user.LastReminderSent,
		user.UpdatedAt, user.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) SetLastReminderSent(ctx context.Context, userID uuid.UUID, at time.Time) error {
	query := `UPDATE users SET last_reminder_sent = $1, updated_at = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, at, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to set last reminder sent: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) SetVerified(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE users SET is_verified = TRUE, updated_at = $1 WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to set verified: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}
