package postgres

import (
	"context"
	"time"

	"finquest/internal/database"
	"finquest/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db database.DB
}

func NewNotificationRepository(db database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, kind, title, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Kind, n.Title, n.Body, time.Now().UTC(),
	)
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, title, body, read_at, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE notifications SET read_at = $1 WHERE id = $2 AND user_id = $3 AND read_at IS NULL`,
		time.Now().UTC(), id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the row belongs to someone else or it is already read;
		// confirm existence before reporting not found.
		row := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND user_id = $2)`,
			id, userID,
		)
		var exists bool
		if scanErr := row.Scan(&exists); scanErr != nil {
			return scanErr
		}
		if !exists {
			return notification.ErrNotFound
		}
	}
	return nil
}
