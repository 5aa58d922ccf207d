package sqlite

import (
	"time"

	"github.com/fapmap/trophy/internal/domain"
)

// ─── Unlock Ledger ──────────────────────────────────────────────────────────
// The ledger is append-only: INSERT OR IGNORE gives union semantics, so
// re-persisting the same set is a no-op and ids are never removed. A user
// with no rows is simply one who has unlocked nothing yet — first-ever
// evaluation needs no special case.

// UnlockAchievements adds ids to a user's ledger. Already-present ids keep
// their original unlock time.
func (d *DB) UnlockAchievements(userID string, ids []string, at time.Time) error {
	for _, id := range ids {
		_, err := d.db.Exec(
			`INSERT OR IGNORE INTO achievements (user_id, id, unlocked_at) VALUES (?, ?, ?)`,
			userID, id, at.Unix(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// UnlockedAchievementIDs returns every id ever unlocked for the user, in
// unlock order.
func (d *DB) UnlockedAchievementIDs(userID string) ([]string, error) {
	rows, err := d.db.Query(
		`SELECT id FROM achievements WHERE user_id = ? ORDER BY unlocked_at, id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListUnlockedAchievements returns a user's unlocks with timestamps,
// most recent first.
func (d *DB) ListUnlockedAchievements(userID string) ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(
		`SELECT id, unlocked_at FROM achievements WHERE user_id = ? ORDER BY unlocked_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.UnlockedAchievement
	for rows.Next() {
		var u domain.UnlockedAchievement
		var unlockedAt int64
		if err := rows.Scan(&u.ID, &unlockedAt); err != nil {
			return nil, err
		}
		u.UnlockedAt = time.Unix(unlockedAt, 0)
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}

// UnlockedAchievementCount returns how many trophies the user has unlocked.
func (d *DB) UnlockedAchievementCount(userID string) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}
