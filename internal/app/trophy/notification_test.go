package trophy_test

import (
	"testing"
	"time"

	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/domain"
)

func unlockEvent(id, title string) domain.UnlockEvent {
	return domain.UnlockEvent{
		AchievementID: id,
		Title:         title,
		Description:   "desc",
		Category:      domain.CatVolume,
	}
}

func TestNotification_QueueAndReveal(t *testing.T) {
	db := testDB(t)
	svc := trophy.NewNotificationService(db)
	at := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	events := []domain.UnlockEvent{
		unlockEvent("vol_1", "Débutant"),
		unlockEvent("vol_5", "Novice"),
	}
	queued, err := svc.QueueUnlocks("u1", events, at)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if queued != 2 {
		t.Errorf("queued = %d, want 2", queued)
	}

	// Reveal order follows unlock order.
	pending, err := svc.Pending("u1", 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].Body != "Débutant — desc" {
		t.Errorf("first toast body = %q", pending[0].Body)
	}

	// Acknowledge the first; only the second remains.
	if err := svc.MarkShown(pending[0].ID); err != nil {
		t.Fatalf("mark shown: %v", err)
	}
	pending, _ = svc.Pending("u1", 10)
	if len(pending) != 1 || pending[0].Body != "Novice — desc" {
		t.Errorf("after ack: pending = %+v", pending)
	}
}

func TestNotification_EmptyDeltaQueuesNothing(t *testing.T) {
	db := testDB(t)
	svc := trophy.NewNotificationService(db)

	queued, err := svc.QueueUnlocks("u1", nil, time.Now())
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if queued != 0 {
		t.Errorf("queued = %d, want 0", queued)
	}
	pending, _ := svc.Pending("u1", 10)
	if len(pending) != 0 {
		t.Errorf("pending = %d, want 0", len(pending))
	}
}

func TestNotification_DailyLimit(t *testing.T) {
	db := testDB(t)
	svc := trophy.NewNotificationServiceWithPolicy(db, domain.NotificationPolicy{MaxPerDay: 1})
	at := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	queued, err := svc.QueueUnlocks("u1", []domain.UnlockEvent{
		unlockEvent("vol_1", "Débutant"),
		unlockEvent("vol_5", "Novice"),
	}, at)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if queued != 1 {
		t.Errorf("queued = %d, want 1 (daily limit)", queued)
	}
}

func TestNotification_QuietHours(t *testing.T) {
	db := testDB(t)
	svc := trophy.NewNotificationServiceWithPolicy(db, domain.NotificationPolicy{
		MaxPerDay:  10,
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	})

	// 23:30 — inside the midnight-wrapping quiet window.
	late := time.Date(2025, 7, 10, 23, 30, 0, 0, time.UTC)
	queued, err := svc.QueueUnlocks("u1", []domain.UnlockEvent{unlockEvent("vol_1", "Débutant")}, late)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if queued != 0 {
		t.Error("expected suppression at 23:30")
	}

	// 10:00 — outside quiet hours.
	morning := time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC)
	queued, err = svc.QueueUnlocks("u1", []domain.UnlockEvent{unlockEvent("vol_1", "Débutant")}, morning)
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if queued != 1 {
		t.Error("expected toast at 10:00")
	}
}

func TestNotification_DefaultPolicyHasNoQuietHours(t *testing.T) {
	policy := domain.DefaultNotificationPolicy()
	if policy.QuietStart != "" || policy.QuietEnd != "" {
		t.Errorf("default policy has quiet hours: %+v", policy)
	}
	if policy.MaxPerDay != 50 {
		t.Errorf("default max per day = %d, want 50", policy.MaxPerDay)
	}
}
