package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nosziii/words/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "words",
	Short: "Spaced-repetition vocabulary trainer",
	Long:  "Words — terminal vocabulary trainer with SM-2 scheduling, daily progress tracking and streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env in the working directory, same variables as the shell.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDS_DB env var)")
	rootCmd.PersistentFlags().String("learner", store.DefaultLearnerID, "Learner profile to act on")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func learnerID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("learner")
	if id == "" {
		return store.DefaultLearnerID
	}
	return id
}
