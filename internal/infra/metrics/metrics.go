// Package metrics provides Prometheus metrics for the trophy engine —
// counters and histograms for evaluations, unlocks, and notifications.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Evaluations ────────────────────────────────────────────────────────────

// Evaluations counts full engine passes (aggregate → evaluate → reconcile).
var Evaluations = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trophy",
	Name:      "evaluations_total",
	Help:      "Total achievement evaluations run.",
})

// EvaluationDuration tracks evaluation pipeline duration in seconds.
var EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "trophy",
	Name:      "evaluation_duration_seconds",
	Help:      "Evaluation pipeline duration in seconds.",
	Buckets:   prometheus.DefBuckets,
})

// ─── Unlocks ────────────────────────────────────────────────────────────────

// TrophiesUnlocked counts newly-unlocked trophies by category.
var TrophiesUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trophy",
	Name:      "unlocked_total",
	Help:      "Total newly-unlocked trophies.",
}, []string{"category"})

// UnlockRegressions counts ledger ids whose predicate stopped holding.
// Any increment indicates a catalog or data bug, not a legitimate re-lock.
var UnlockRegressions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trophy",
	Name:      "unlock_regressions_total",
	Help:      "Persisted unlocks whose predicate no longer holds.",
})

// ─── Notifications ──────────────────────────────────────────────────────────

// NotificationsQueued counts toasts accepted into the pending queue.
var NotificationsQueued = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trophy",
	Name:      "notifications_queued_total",
	Help:      "Unlock toasts queued for presentation.",
})

// NotificationsSuppressed counts toasts dropped by policy.
var NotificationsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trophy",
	Name:      "notifications_suppressed_total",
	Help:      "Unlock toasts suppressed by notification policy.",
})
