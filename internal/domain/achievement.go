package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatVolume   AchievementCategory = "volume"
	CatStreak   AchievementCategory = "streak"
	CatTiming   AchievementCategory = "timing"
	CatDuration AchievementCategory = "duration"
	CatRating   AchievementCategory = "rating"
	CatSocial   AchievementCategory = "social"
)

// AchievementDef defines a single achievement. IDs are stable and never
// reused once shipped — the persisted unlock ledger refers to them.
// Threshold predicates must be monotonic: an achievement unlocked by a
// growing count must never re-lock as the count keeps growing.
type AchievementDef struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    AchievementCategory      `json:"category"`
	Icon        string                   `json:"icon"`
	Predicate   func(StatsSnapshot) bool `json:"-"` // Check function (not serialized)
}

// UnlockedAchievement records when an achievement was earned.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// UnlockEvent is a presentation-ready "trophy unlocked" toast. The engine
// only decides what to show and in what order; timing belongs to the caller.
type UnlockEvent struct {
	AchievementID string              `json:"achievement_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      AchievementCategory `json:"category"`
	Icon          string              `json:"icon"`
}

// Evaluation is the result of one full engine pass: aggregate, evaluate,
// reconcile, emit. Unlocked is the live predicate-true set (for rendering
// the trophy grid); Delta holds ids unlocked now but not previously.
type Evaluation struct {
	Snapshot StatsSnapshot `json:"snapshot"`
	Unlocked []string      `json:"unlocked"`
	Delta    []string      `json:"delta"`
	Events   []UnlockEvent `json:"events"`
}

// UnlockStore is the per-user persistence port for the unlock ledger.
// Implementations must treat the ledger as append-only: ids are added with
// union semantics and never removed.
type UnlockStore interface {
	// UnlockedAchievementIDs returns every id ever unlocked for the user.
	UnlockedAchievementIDs(userID string) ([]string, error)
	// UnlockAchievements adds ids to the ledger. Already-present ids are
	// ignored, so re-running a reconciliation is harmless.
	UnlockAchievements(userID string, ids []string, at time.Time) error
}

// ─── Notification Types ─────────────────────────────────────────────────────

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotifyAchievement NotificationType = "achievement"
)

// Notification is a queued user-facing toast. The client polls pending
// notifications and acknowledges them one at a time.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}

// NotificationPolicy governs how many toasts may be queued.
type NotificationPolicy struct {
	MaxPerDay  int    `json:"max_per_day"`
	QuietStart string `json:"quiet_start"` // "22:00", "" = no quiet hours
	QuietEnd   string `json:"quiet_end"`   // "08:00"
}

// DefaultNotificationPolicy is deliberately permissive: unlock toasts are
// rare (once per achievement, ever) so there is no need to ration them.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{MaxPerDay: 50}
}
