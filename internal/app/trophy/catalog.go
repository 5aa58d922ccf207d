package trophy

import (
	"fmt"

	"github.com/fapmap/trophy/internal/domain"
)

// ─── Trophy Catalog ─────────────────────────────────────────────────────────
// 27 trophies across 6 categories. The catalog is data: adding a trophy
// never touches the aggregator or evaluator. IDs are stable forever — the
// unlock ledger refers to them. Within a category, entries are ordered by
// ascending threshold so delta ordering is deterministic.

// Catalog returns the full trophy catalog.
func Catalog() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Volume (6) ─────────────────────────────────────────────────
		{
			ID: "vol_1", Title: "Débutant", Description: "Premier post publié",
			Category: domain.CatVolume, Icon: "medal",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 1 },
		},
		{
			ID: "vol_5", Title: "Novice", Description: "5 sessions enregistrées",
			Category: domain.CatVolume, Icon: "medal",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 5 },
		},
		{
			ID: "vol_10", Title: "Habitué", Description: "10 sessions enregistrées",
			Category: domain.CatVolume, Icon: "award",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 10 },
		},
		{
			ID: "vol_25", Title: "Confirmé", Description: "25 sessions au compteur",
			Category: domain.CatVolume, Icon: "award",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 25 },
		},
		{
			ID: "vol_50", Title: "Accroc", Description: "50 sessions !",
			Category: domain.CatVolume, Icon: "trophy",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 50 },
		},
		{
			ID: "vol_100", Title: "Légende", Description: "100 sessions. Incroyable.",
			Category: domain.CatVolume, Icon: "crown",
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount >= 100 },
		},

		// ── Streaks (5) ────────────────────────────────────────────────
		{
			ID: "str_2", Title: "Double Tap", Description: "2 jours de suite",
			Category: domain.CatStreak, Icon: "flame",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreakDays >= 2 },
		},
		{
			ID: "str_3", Title: "Chauffage", Description: "3 jours de suite",
			Category: domain.CatStreak, Icon: "flame",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreakDays >= 3 },
		},
		{
			ID: "str_7", Title: "Semaine de Feu", Description: "7 jours de suite",
			Category: domain.CatStreak, Icon: "trending-up",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreakDays >= 7 },
		},
		{
			ID: "str_14", Title: "Dévoué", Description: "2 semaines complètes",
			Category: domain.CatStreak, Icon: "trending-up",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreakDays >= 14 },
		},
		{
			ID: "str_30", Title: "Mois Complet", Description: "30 jours sans pause",
			Category: domain.CatStreak, Icon: "calendar",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreakDays >= 30 },
		},

		// ── Timing (4) ─────────────────────────────────────────────────
		{
			ID: "time_early", Title: "Lève-tôt", Description: "Post entre 5h et 9h",
			Category: domain.CatTiming, Icon: "sun",
			Predicate: func(s domain.StatsSnapshot) bool { return s.HourHit("early_morning") },
		},
		{
			ID: "time_lunch", Title: "Pause Déj", Description: "Post entre 12h et 14h",
			Category: domain.CatTiming, Icon: "coffee",
			Predicate: func(s domain.StatsSnapshot) bool { return s.HourHit("lunch") },
		},
		{
			ID: "time_after", Title: "After Work", Description: "Post entre 17h et 20h",
			Category: domain.CatTiming, Icon: "sunset",
			Predicate: func(s domain.StatsSnapshot) bool { return s.HourHit("after_work") },
		},
		{
			ID: "time_night", Title: "Oiseau de Nuit", Description: "Post entre 2h et 5h",
			Category: domain.CatTiming, Icon: "moon",
			Predicate: func(s domain.StatsSnapshot) bool { return s.HourHit("night") },
		},

		// ── Duration (5) ───────────────────────────────────────────────
		{
			ID: "dur_flash", Title: "L'Éclair", Description: "Session de moins de 2 min",
			Category: domain.CatDuration, Icon: "zap",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DurationHit("flash") },
		},
		{
			ID: "dur_std", Title: "Session Standard", Description: "Entre 10 et 20 min",
			Category: domain.CatDuration, Icon: "clock",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DurationHit("standard") },
		},
		{
			ID: "dur_long", Title: "Longue Séance", Description: "Plus de 30 min",
			Category: domain.CatDuration, Icon: "activity",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DurationHit("long") },
		},
		{
			ID: "dur_mara", Title: "Marathon", Description: "Plus de 45 min",
			Category: domain.CatDuration, Icon: "activity",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DurationHit("marathon") },
		},
		{
			ID: "dur_endure", Title: "Endurance", Description: "Plus de 1 heure",
			Category: domain.CatDuration, Icon: "activity",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DurationHit("endurance") },
		},

		// ── Ratings (3) ────────────────────────────────────────────────
		{
			ID: "rate_avg", Title: "Dans la Moyenne", Description: "Note entre 2.5 et 3.5",
			Category: domain.CatRating, Icon: "star",
			Predicate: func(s domain.StatsSnapshot) bool { return s.RatingHit("average") },
		},
		{
			ID: "rate_good", Title: "Bonne Session", Description: "Note supérieure à 4.0",
			Category: domain.CatRating, Icon: "star",
			Predicate: func(s domain.StatsSnapshot) bool { return s.RatingHit("good") },
		},
		{
			ID: "rate_perf", Title: "Perfectionniste", Description: "Note parfaite de 5.0",
			Category: domain.CatRating, Icon: "star",
			Predicate: func(s domain.StatsSnapshot) bool { return s.RatingHit("perfect") },
		},

		// ── Social & Feature (4) ───────────────────────────────────────
		{
			ID: "feat_photo", Title: "Photographe", Description: "A utilisé les 2 caméras",
			Category: domain.CatSocial, Icon: "camera",
			// Every post carries both camera shots, so any post qualifies.
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalCount > 0 },
		},
		{
			ID: "feat_place", Title: "Cartographe", Description: "A nommé un lieu personnalisé",
			Category: domain.CatSocial, Icon: "map-pin",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DistinctLocationCount >= 1 },
		},
		{
			ID: "feat_explore", Title: "Explorateur", Description: "5 lieux différents",
			Category: domain.CatSocial, Icon: "map-pin",
			Predicate: func(s domain.StatsSnapshot) bool { return s.DistinctLocationCount >= 5 },
		},
		{
			ID: "feat_comment", Title: "Critique", Description: "A laissé un commentaire",
			Category: domain.CatSocial, Icon: "message-circle",
			Predicate: func(s domain.StatsSnapshot) bool { return s.CommentCount > 0 },
		},
	}
}

// ValidateCatalog rejects catalogs with duplicate ids. The unlock ledger
// keys on the id, so a duplicate would make unlocks ambiguous.
func ValidateCatalog(defs []domain.AchievementDef) error {
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.ID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateAchievementID, def.ID)
		}
		seen[def.ID] = true
	}
	return nil
}

// DefByID looks up a catalog entry. Returns false for retired or unknown ids.
func DefByID(defs []domain.AchievementDef, id string) (domain.AchievementDef, bool) {
	for _, def := range defs {
		if def.ID == id {
			return def, true
		}
	}
	return domain.AchievementDef{}, false
}
