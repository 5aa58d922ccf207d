package trophy

import (
	"time"

	"github.com/fapmap/trophy/internal/domain"
	"github.com/fapmap/trophy/internal/infra/metrics"
)

// Engine is the single entry point the presentation layer calls whenever a
// user's posts or comment count change. One call runs the whole pipeline:
// aggregate → evaluate → reconcile → emit. Evaluations for the same user
// must not interleave; callers should serialize or debounce per user.
type Engine struct {
	store domain.UnlockStore
	defs  []domain.AchievementDef
}

// New creates an engine over the given unlock ledger with the full catalog.
func New(store domain.UnlockStore) *Engine {
	return &Engine{store: store, defs: Catalog()}
}

// NewWithCatalog creates an engine with a custom catalog. Used by tests.
func NewWithCatalog(store domain.UnlockStore, defs []domain.AchievementDef) *Engine {
	return &Engine{store: store, defs: defs}
}

// Definitions returns the catalog (for rendering locked trophies too).
func (e *Engine) Definitions() []domain.AchievementDef {
	return e.defs
}

// EvaluateNow recomputes everything from scratch for one user. Unlocked is
// the live predicate-true set for the trophy grid; Delta and Events cover
// only trophies that were not in the ledger before this call.
func (e *Engine) EvaluateNow(userID string, records []domain.ActivityRecord, social domain.SocialCounters, now time.Time) (*domain.Evaluation, error) {
	start := time.Now()

	snap := Aggregate(records, social, now)
	unlocked := Evaluate(snap, e.defs)

	delta, err := NewTracker(e.store).Reconcile(userID, unlocked, now)
	if err != nil {
		return nil, err
	}
	events := EmitUnlocks(delta, e.defs)

	metrics.Evaluations.Inc()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	for _, ev := range events {
		metrics.TrophiesUnlocked.WithLabelValues(string(ev.Category)).Inc()
	}

	return &domain.Evaluation{
		Snapshot: snap,
		Unlocked: unlocked,
		Delta:    delta,
		Events:   events,
	}, nil
}
