// Package trophy implements the achievement engine: it reduces a user's
// post history to a statistics snapshot, evaluates the trophy catalog
// against it, reconciles the result with the persisted unlock ledger, and
// emits one toast event per newly-unlocked trophy.
package trophy

import (
	"sort"
	"time"

	"github.com/fapmap/trophy/internal/domain"
)

// ─── Bucket Tables ──────────────────────────────────────────────────────────
// Named ranges tested by catalog predicates. Hour buckets are half-open
// [start, end) on the local hour of day; duration and rating buckets are
// inclusive on both ends, with max = 0 meaning unbounded above. Buckets may
// overlap — a single record can hit several.

type hourBucket struct {
	name       string
	start, end int // [start, end) hour of day
}

type rangeBucket struct {
	name     string
	min, max float64 // [min, max], max 0 = unbounded
}

var hourBuckets = []hourBucket{
	{"early_morning", 5, 9},
	{"lunch", 12, 14},
	{"after_work", 17, 20},
	{"night", 2, 5},
}

var durationBuckets = []rangeBucket{
	{"flash", 1, 120},
	{"standard", 600, 1200},
	{"long", 1800, 0},
	{"marathon", 2700, 0},
	{"endurance", 3600, 0},
}

var ratingBuckets = []rangeBucket{
	{"average", 2.5, 3.5},
	{"good", 4.0, 0},
	{"perfect", 5.0, 5.0},
}

func (b rangeBucket) hit(v float64) bool {
	if v < b.min {
		return false
	}
	return b.max == 0 || v <= b.max
}

// ─── Aggregator ─────────────────────────────────────────────────────────────

// Aggregate reduces a post history and social counters to a StatsSnapshot.
// Pure and deterministic: "now" is an explicit input, and calendar days come
// from now's location. Records without a usable timestamp are skipped;
// a single bad record never fails the whole evaluation.
func Aggregate(records []domain.ActivityRecord, social domain.SocialCounters, now time.Time) domain.StatsSnapshot {
	snap := domain.StatsSnapshot{
		HourBucketHits:     make(map[string]bool),
		DurationBucketHits: make(map[string]bool),
		RatingBucketHits:   make(map[string]bool),
		CommentCount:       social.CommentCount,
	}

	loc := now.Location()
	days := make(map[time.Time]bool)
	locations := make(map[string]bool)

	for _, r := range records {
		if !r.Valid() {
			continue
		}
		snap.TotalCount++

		local := r.Timestamp.In(loc)
		days[dayKey(local)] = true

		hour := local.Hour()
		for _, b := range hourBuckets {
			if hour >= b.start && hour < b.end {
				snap.HourBucketHits[b.name] = true
			}
		}

		if r.DurationSeconds > 0 {
			for _, b := range durationBuckets {
				if b.hit(float64(r.DurationSeconds)) {
					snap.DurationBucketHits[b.name] = true
				}
			}
		}

		if r.RatingAverage > 0 {
			for _, b := range ratingBuckets {
				if b.hit(r.RatingAverage) {
					snap.RatingBucketHits[b.name] = true
				}
			}
		}

		if r.LocationLabel != "" {
			locations[r.LocationLabel] = true
		}
	}

	snap.DistinctLocationCount = len(locations)
	snap.CurrentStreakDays = currentStreak(days, now)
	return snap
}

// currentStreak counts consecutive calendar days with at least one post,
// ending at today or yesterday. A most-recent post older than yesterday
// means the streak is broken even though history exists.
func currentStreak(days map[time.Time]bool, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	today := dayKey(now.In(now.Location()))
	yesterday := today.AddDate(0, 0, -1)

	if !sorted[0].Equal(today) && !sorted[0].Equal(yesterday) {
		return 0 // Stale history
	}

	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		gap := int(sorted[i].Sub(sorted[i+1]).Hours() / 24)
		if gap != 1 {
			break
		}
		streak++
	}
	return streak
}

// dayKey maps a local time to a location-independent calendar-day key.
// Anchoring the key at UTC midnight keeps day arithmetic exact across DST.
func dayKey(local time.Time) time.Time {
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
