package trophy

import "github.com/fapmap/trophy/internal/domain"

// Evaluate applies every catalog predicate to the snapshot and returns the
// ids that hold. Membership is what matters; the slice follows catalog
// order so downstream delta ordering is deterministic. An empty catalog or
// an all-zero snapshot are ordinary inputs, not errors.
func Evaluate(snap domain.StatsSnapshot, defs []domain.AchievementDef) []string {
	var unlocked []string
	for _, def := range defs {
		if def.Predicate != nil && def.Predicate(snap) {
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}
