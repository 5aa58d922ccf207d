package trophy

import "github.com/fapmap/trophy/internal/domain"

// EmitUnlocks turns newly-unlocked ids into presentation-ready toast
// events, one per id, in delta order. The consumer is expected to reveal
// them one at a time; the engine only guarantees ordering, never timing.
// An empty delta is the common case and produces no events.
func EmitUnlocks(delta []string, defs []domain.AchievementDef) []domain.UnlockEvent {
	var events []domain.UnlockEvent
	for _, id := range delta {
		def, ok := DefByID(defs, id)
		if !ok {
			continue // Retired id — nothing to show
		}
		events = append(events, domain.UnlockEvent{
			AchievementID: def.ID,
			Title:         def.Title,
			Description:   def.Description,
			Category:      def.Category,
			Icon:          def.Icon,
		})
	}
	return events
}
