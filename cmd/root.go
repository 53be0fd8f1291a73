package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fweber/lexiscope/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lexiscope",
	Short: "Estimate your vocabulary from a sampled self-assessment",
	Long: "Lexiscope — a terminal tool that walks you through a shuffled word list,\n" +
		"lets you rate (or prove) how well you know each word, and extrapolates\n" +
		"the sample to estimate how much of the full list you know.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXISCOPE_DB env var)")

	addReviewFlags(rootCmd)

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then LEXISCOPE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
