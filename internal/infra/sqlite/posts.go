package sqlite

import (
	"database/sql"
	"time"

	"github.com/fapmap/trophy/internal/domain"
)

// ─── Posts ──────────────────────────────────────────────────────────────────

// InsertPost stores one activity record.
func (d *DB) InsertPost(p domain.ActivityRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO posts (id, user_id, created_at, duration_seconds, rating_average, location)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Timestamp.Unix(), p.DurationSeconds, p.RatingAverage, p.LocationLabel,
	)
	return err
}

// ListPosts returns a user's activity history, most recent first.
func (d *DB) ListPosts(userID string) ([]domain.ActivityRecord, error) {
	rows, err := d.db.Query(
		`SELECT id, user_id, created_at, duration_seconds, rating_average, location
		 FROM posts WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.ActivityRecord
	for rows.Next() {
		var p domain.ActivityRecord
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.UserID, &createdAt, &p.DurationSeconds, &p.RatingAverage, &p.LocationLabel); err != nil {
			return nil, err
		}
		p.Timestamp = time.Unix(createdAt, 0)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// PostCount returns how many posts a user has.
func (d *DB) PostCount(userID string) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

// ─── Comments ───────────────────────────────────────────────────────────────

// InsertComment stores one comment.
func (d *DB) InsertComment(id, userID, postID, body string, at time.Time) error {
	_, err := d.db.Exec(
		`INSERT INTO comments (id, user_id, post_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, userID, postID, body, at.Unix(),
	)
	return err
}

// CommentCount returns how many comments the user has authored.
func (d *DB) CommentCount(userID string) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM comments WHERE user_id = ?`, userID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return count, err
}
