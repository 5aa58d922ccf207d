// Package sqlite provides SQLite-based persistent storage for the trophy
// engine. Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/trophy.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "trophy.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Post store (the activity history the engine reads)
		`CREATE TABLE IF NOT EXISTS posts (
			id               TEXT PRIMARY KEY,
			user_id          TEXT NOT NULL,
			created_at       INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			rating_average   REAL NOT NULL DEFAULT 0,
			location         TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_user ON posts(user_id, created_at)`,

		// Comment store (only the authored count feeds the engine)
		`CREATE TABLE IF NOT EXISTS comments (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			post_id    TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_user ON comments(user_id)`,

		// Unlock ledger — append-only union of every historical unlock
		`CREATE TABLE IF NOT EXISTS achievements (
			user_id     TEXT NOT NULL,
			id          TEXT NOT NULL,
			unlocked_at INTEGER NOT NULL,
			PRIMARY KEY (user_id, id)
		)`,

		// Pending toast queue (one-at-a-time reveal, client acknowledges)
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			type       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_pending ON notifications(user_id, shown)`,
	}

	for i, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
