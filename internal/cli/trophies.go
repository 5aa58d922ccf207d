package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/daemon"
	"github.com/fapmap/trophy/internal/domain"
)

func init() {
	trophiesCmd.Flags().StringVar(&trophiesUser, "user", "", "User id (required)")
	trophiesCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(trophiesCmd)
}

var trophiesUser string

var trophiesCmd = &cobra.Command{
	Use:   "trophies",
	Short: "Show the trophy grid for a user",
	RunE:  runTrophies,
}

func runTrophies(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	records, err := d.DB.ListPosts(trophiesUser)
	if err != nil {
		return err
	}
	comments, err := d.DB.CommentCount(trophiesUser)
	if err != nil {
		return err
	}

	snap := trophy.Aggregate(records, domain.SocialCounters{CommentCount: comments}, time.Now())
	defs := d.Engine.Definitions()
	unlocked := trophy.Evaluate(snap, defs)

	unlockedSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = true
	}

	fmt.Printf("Trophies: %d / %d unlocked\n", len(unlocked), len(defs))
	fmt.Printf("Posts: %d  Streak: %d days  Locations: %d  Comments: %d\n\n",
		snap.TotalCount, snap.CurrentStreakDays, snap.DistinctLocationCount, snap.CommentCount)

	var lastCat domain.AchievementCategory
	for _, def := range defs {
		if def.Category != lastCat {
			fmt.Printf("── %s ──\n", def.Category)
			lastCat = def.Category
		}
		mark := " "
		if unlockedSet[def.ID] {
			mark = "x"
		}
		fmt.Printf("  [%s] %-18s %s\n", mark, def.Title, def.Description)
	}
	return nil
}
