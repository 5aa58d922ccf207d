// Package domain holds the core types of the trophy engine: activity
// records, derived statistics, achievement definitions, and the ports the
// engine needs from its collaborators.
package domain

import "time"

// ─── Activity Types ─────────────────────────────────────────────────────────

// ActivityRecord is one logged post. Records are owned by the post store;
// the engine only reads them. Duration, rating, and location are optional.
type ActivityRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Timestamp       time.Time `json:"created_at"`
	DurationSeconds int       `json:"duration_seconds"` // 0 = untimed
	RatingAverage   float64   `json:"rating_average"`   // 0 = unrated, else [1.0, 5.0]
	LocationLabel   string    `json:"location"`         // "" = no named place
}

// Valid reports whether the record can participate in aggregation.
// A record with no usable timestamp is skipped, never fatal.
func (r ActivityRecord) Valid() bool {
	return !r.Timestamp.IsZero()
}

// SocialCounters carries scalar inputs that are not derived from the
// activity history, supplied by the caller per evaluation.
type SocialCounters struct {
	CommentCount int `json:"comment_count"`
}

// ─── Derived Statistics ─────────────────────────────────────────────────────

// StatsSnapshot is the aggregated view of a user's history that achievement
// predicates are evaluated against. It is recomputed on every evaluation and
// never persisted.
type StatsSnapshot struct {
	TotalCount            int             `json:"total_count"`
	CurrentStreakDays     int             `json:"current_streak_days"`
	HourBucketHits        map[string]bool `json:"hour_bucket_hits"`
	DurationBucketHits    map[string]bool `json:"duration_bucket_hits"`
	RatingBucketHits      map[string]bool `json:"rating_bucket_hits"`
	DistinctLocationCount int             `json:"distinct_location_count"`
	CommentCount          int             `json:"comment_count"`
}

// HourHit reports whether any record fell in the named time-of-day bucket.
func (s StatsSnapshot) HourHit(bucket string) bool { return s.HourBucketHits[bucket] }

// DurationHit reports whether any record fell in the named duration bucket.
func (s StatsSnapshot) DurationHit(bucket string) bool { return s.DurationBucketHits[bucket] }

// RatingHit reports whether any record fell in the named rating bucket.
func (s StatsSnapshot) RatingHit(bucket string) bool { return s.RatingBucketHits[bucket] }
