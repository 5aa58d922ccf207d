// Package cli implements the trophy command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trophy",
	Short: "Trophy — achievement engine for the posting app",
	Long: `Trophy aggregates a user's post history into statistics, evaluates
the trophy catalog against them, and tracks newly-unlocked trophies so each
one is announced exactly once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
