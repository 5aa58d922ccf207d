package sqlite

import (
	"time"

	"github.com/fapmap/trophy/internal/domain"
)

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification queues a new toast.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	result, err := d.db.Exec(
		`INSERT INTO notifications (user_id, type, title, body, created_at, shown)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.UserID, string(n.Type), n.Title, n.Body, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// NotificationCountToday returns how many toasts were queued for the user
// since the given start of day.
func (d *DB) NotificationCountToday(userID string, startOfDay time.Time) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND created_at >= ?`,
		userID, startOfDay.Unix(),
	).Scan(&count)
	return count, err
}

// ListPendingNotifications returns unshown toasts, oldest first, so the
// client reveals them in unlock order.
func (d *DB) ListPendingNotifications(userID string, limit int) ([]domain.Notification, error) {
	rows, err := d.db.Query(
		`SELECT id, user_id, type, title, body, created_at, shown
		 FROM notifications WHERE user_id = ? AND shown = 0 ORDER BY created_at, id LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt int64
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &createdAt, &n.Shown); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(createdAt, 0)
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown acknowledges a toast.
func (d *DB) MarkNotificationShown(id int64) error {
	result, err := d.db.Exec(`UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
