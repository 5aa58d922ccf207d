package trophy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fapmap/trophy/internal/domain"
	"github.com/fapmap/trophy/internal/infra/metrics"
	"github.com/fapmap/trophy/internal/infra/sqlite"
)

// NotificationService queues unlock toasts for one-at-a-time presentation.
// The client polls pending toasts and acknowledges each as it is shown.
// Policy can cap toasts per day and respect quiet hours; suppression only
// drops the toast — the ledger already holds the unlock, so a suppressed
// trophy is never re-announced later.
type NotificationService struct {
	db     *sqlite.DB
	policy domain.NotificationPolicy
}

// NewNotificationService creates a notification service with default policy.
func NewNotificationService(db *sqlite.DB) *NotificationService {
	return &NotificationService{db: db, policy: domain.DefaultNotificationPolicy()}
}

// NewNotificationServiceWithPolicy creates a notification service with custom policy.
func NewNotificationServiceWithPolicy(db *sqlite.DB, policy domain.NotificationPolicy) *NotificationService {
	return &NotificationService{db: db, policy: policy}
}

// QueueUnlocks turns unlock events into queued toasts, preserving event
// order. Returns how many were accepted.
func (n *NotificationService) QueueUnlocks(userID string, events []domain.UnlockEvent, at time.Time) (int, error) {
	queued := 0
	for _, ev := range events {
		id, err := n.queue(userID, ev, at)
		if err != nil {
			return queued, err
		}
		if id != 0 {
			queued++
		}
	}
	return queued, nil
}

// queue inserts one toast if policy allows it. Returns 0 if suppressed.
func (n *NotificationService) queue(userID string, ev domain.UnlockEvent, at time.Time) (int64, error) {
	if n.policy.MaxPerDay > 0 {
		startOfDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
		todayCount, err := n.db.NotificationCountToday(userID, startOfDay)
		if err != nil {
			return 0, fmt.Errorf("count today: %w", err)
		}
		if todayCount >= n.policy.MaxPerDay {
			metrics.NotificationsSuppressed.Inc()
			return 0, nil // Daily limit reached
		}
	}

	if n.isQuietHour(at) {
		metrics.NotificationsSuppressed.Inc()
		return 0, nil
	}

	id, err := n.db.InsertNotification(domain.Notification{
		UserID:    userID,
		Type:      domain.NotifyAchievement,
		Title:     "Trophée Débloqué !",
		Body:      fmt.Sprintf("%s — %s", ev.Title, ev.Description),
		CreatedAt: at,
	})
	if err != nil {
		return 0, fmt.Errorf("insert notification: %w", err)
	}
	metrics.NotificationsQueued.Inc()
	return id, nil
}

// Pending returns unshown toasts in reveal order.
func (n *NotificationService) Pending(userID string, limit int) ([]domain.Notification, error) {
	return n.db.ListPendingNotifications(userID, limit)
}

// MarkShown acknowledges a toast.
func (n *NotificationService) MarkShown(id int64) error {
	return n.db.MarkNotificationShown(id)
}

// Policy returns the current notification policy.
func (n *NotificationService) Policy() domain.NotificationPolicy {
	return n.policy
}

// isQuietHour returns true if t falls within the policy's quiet hours.
func (n *NotificationService) isQuietHour(t time.Time) bool {
	if n.policy.QuietStart == "" || n.policy.QuietEnd == "" {
		return false
	}
	startHour, startMin := parseHHMM(n.policy.QuietStart)
	endHour, endMin := parseHHMM(n.policy.QuietEnd)

	timeMinutes := t.Hour()*60 + t.Minute()
	startMinutes := startHour*60 + startMin
	endMinutes := endHour*60 + endMin

	if startMinutes > endMinutes {
		// Wraps midnight: e.g., 22:00 – 08:00
		return timeMinutes >= startMinutes || timeMinutes < endMinutes
	}
	return timeMinutes >= startMinutes && timeMinutes < endMinutes
}

// parseHHMM parses "HH:MM" into hour and minute.
func parseHHMM(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}
