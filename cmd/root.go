package cmd

import (
	"fmt"
	"os"

	"github.com/D3V3LOP3R-wizard/consist/internal/config"
	"github.com/D3V3LOP3R-wizard/consist/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagDays     int
)

var rootCmd = &cobra.Command{
	Use:   "consist",
	Short: "Habit consistency tracker",
	Long:  "Track daily time on your habits: streaks, completion rates, and goals.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data-file", "f", "", "Path to the JSON data file (default: configured location)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Window for daily charts in days (default: configured chart_days)")
}

// openStore is the shared data loading path used by all commands. A broken
// config falls back to defaults so read commands keep working.
func openStore() (*store.Store, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config error: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	path := flagDataFile
	if path == "" {
		path = config.DataFile(cfg)
	}
	return store.Open(path), cfg
}

// chartDays resolves the daily chart window: --days wins over config.
func chartDays(cfg config.Config) int {
	if flagDays > 0 {
		return flagDays
	}
	return config.ChartDays(cfg)
}
