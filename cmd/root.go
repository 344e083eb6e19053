package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iamtheretronerd/levelup/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "levelup",
	Short: "LevelUp backend",
	Long:  "LevelUp — backend for the skill-learning journey app: AI-generated practice levels with difficulty-adaptive progression.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEVELUP_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEVELUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
