package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// NotificationsRepository describes persistence operations for operator
// notifications.
type NotificationsRepository interface {
	Insert(ctx context.Context, notification *entity.Notification) error
	ListUnread(ctx context.Context, limit int) ([]entity.Notification, error)
}

// PGXNotificationsRepository implements NotificationsRepository using pgx.
type PGXNotificationsRepository struct {
	pool pgxPool
}

// NewPGXNotificationsRepository wires a pgx backed repository.
func NewPGXNotificationsRepository(pool *pgxpool.Pool) *PGXNotificationsRepository {
	return &PGXNotificationsRepository{pool: pool}
}

// Insert stores a notification line.
func (r *PGXNotificationsRepository) Insert(ctx context.Context, notification *entity.Notification) error {
	if notification == nil {
		return fmt.Errorf("notification payload is nil")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (type, prospect_id, preview_id, message, is_read)
		VALUES ($1, $2, $3, $4, $5)`,
		notification.Type,
		notification.ProspectID,
		notification.PreviewID,
		notification.Message,
		notification.IsRead,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListUnread returns the newest unread notifications.
func (r *PGXNotificationsRepository) ListUnread(ctx context.Context, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, type, prospect_id, preview_id, message, is_read, created_at
		FROM notifications
		WHERE NOT is_read
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []entity.Notification
	for rows.Next() {
		var (
			n          entity.Notification
			prospectID *uuid.UUID
			previewID  *uuid.UUID
		)
		if err := rows.Scan(&n.ID, &n.Type, &prospectID, &previewID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.ProspectID = prospectID
		n.PreviewID = previewID
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}
