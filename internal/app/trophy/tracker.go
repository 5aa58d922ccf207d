package trophy

import (
	"fmt"
	"log"
	"time"

	"github.com/fapmap/trophy/internal/domain"
	"github.com/fapmap/trophy/internal/infra/metrics"
)

// Tracker reconciles a freshly computed unlocked set against the persisted
// ledger. The ledger is append-only (union of every historical unlock):
// a predicate that stops holding — a catalog or data bug, since history is
// never deleted — is logged and counted, never removed from the ledger.
// Re-unlock therefore never re-notifies.
type Tracker struct {
	store domain.UnlockStore
}

// NewTracker creates a tracker over the given unlock ledger.
func NewTracker(store domain.UnlockStore) *Tracker {
	return &Tracker{store: store}
}

// Reconcile computes delta = unlocked − previously-persisted, persists the
// new ids, and returns the delta in the order unlocked was given (catalog
// order). Exactly one store write happens per call, empty delta included,
// so re-running with unchanged inputs yields an empty delta.
func (t *Tracker) Reconcile(userID string, unlocked []string, at time.Time) ([]string, error) {
	prev, err := t.store.UnlockedAchievementIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("load unlock ledger: %w", err)
	}

	prevSet := make(map[string]bool, len(prev))
	for _, id := range prev {
		prevSet[id] = true
	}

	var delta []string
	newSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		newSet[id] = true
		if !prevSet[id] {
			delta = append(delta, id)
		}
	}

	// An id in the ledger but no longer predicate-true means the catalog
	// or the history regressed. Flag it; the ledger keeps the unlock.
	for _, id := range prev {
		if !newSet[id] {
			log.Printf("[trophy] unlock regression: %s no longer satisfied for user %s", id, userID)
			metrics.UnlockRegressions.Inc()
		}
	}

	if err := t.store.UnlockAchievements(userID, unlocked, at); err != nil {
		return nil, fmt.Errorf("persist unlock ledger: %w", err)
	}
	return delta, nil
}
