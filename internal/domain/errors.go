package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Ingestion errors
	ErrUserRequired = errors.New("user id is required")

	// Catalog errors
	ErrDuplicateAchievementID = errors.New("duplicate achievement id in catalog")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")
)
