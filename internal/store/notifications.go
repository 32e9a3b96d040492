package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strayaid/strayaid/internal/model"
)

// CreateNotification inserts one unread notification for a user and
// returns it with its server-assigned ID and timestamp.
func CreateNotification(ctx context.Context, db *sql.DB, userID int64, message string) (*model.Notification, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, message) VALUES (?, ?)`,
		userID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting notification id: %w", err)
	}

	n := &model.Notification{}
	err = db.QueryRowContext(ctx,
		`SELECT id, user_id, message, is_read, created_at
		 FROM notifications WHERE id = ?`, id,
	).Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting notification: %w", err)
	}
	return n, nil
}

// ListNotifications returns a user's most recent notifications, newest
// first, capped at limit.
func ListNotifications(ctx context.Context, db *sql.DB, userID int64, limit int) ([]model.Notification, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, message, is_read, created_at
		 FROM notifications WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead sets a notification's read flag. Returns false if
// no such notification exists.
func MarkNotificationRead(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ?`, id,
	)
	if err != nil {
		return false, fmt.Errorf("marking notification read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking affected rows: %w", err)
	}
	return affected > 0, nil
}
