package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fapmap/trophy/internal/daemon"
	"github.com/fapmap/trophy/internal/domain"
)

func init() {
	evalCmd.Flags().StringVar(&evalUser, "user", "", "User id (required)")
	evalCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(evalCmd)
}

var evalUser string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run an evaluation and report newly-unlocked trophies",
	Long: `Recompute the user's statistics from the local store, reconcile
against the unlock ledger, and queue a toast for anything new.`,
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	records, err := d.DB.ListPosts(evalUser)
	if err != nil {
		return err
	}
	comments, err := d.DB.CommentCount(evalUser)
	if err != nil {
		return err
	}

	now := time.Now()
	eval, err := d.Engine.EvaluateNow(evalUser, records, domain.SocialCounters{CommentCount: comments}, now)
	if err != nil {
		return err
	}

	if _, err := d.Notification.QueueUnlocks(evalUser, eval.Events, now); err != nil {
		return err
	}

	fmt.Printf("Unlocked: %d / %d\n", len(eval.Unlocked), len(d.Engine.Definitions()))
	if len(eval.Events) == 0 {
		fmt.Println("No new trophies.")
		return nil
	}
	fmt.Printf("New trophies (%d):\n", len(eval.Events))
	for _, ev := range eval.Events {
		fmt.Printf("  %s — %s\n", ev.Title, ev.Description)
	}
	return nil
}
