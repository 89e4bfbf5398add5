package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstippagol/habit/internal/domain/entity"
	"github.com/gstippagol/habit/internal/domain/repository"
)

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new PostgreSQL notification repository.
func NewNotificationRepository(pool *pgxpool.Pool) repository.NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (
			id, user_id, type, status, subject, recipient,
			error, sent_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.UserID, n.Type, n.Status, n.Subject, n.To,
		n.Error, n.SentAt, n.CreatedAt, n.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) Update(ctx context.Context, n *entity.Notification) error {
	query := `
		UPDATE notifications SET
			status = $1,
			error = $2,
			sent_at = $3,
			updated_at = $4
		WHERE id = $5
	`

	_, err := r.pool.Exec(ctx, query, n.Status, n.Error, n.SentAt, n.UpdatedAt, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, type, status, subject, recipient,
		       error, sent_at, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n := &entity.Notification{}
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Status, &n.Subject, &n.To,
			&n.Error, &n.SentAt, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
