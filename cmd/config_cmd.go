// Package cmd implements the consist CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/D3V3LOP3R-wizard/consist/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	dataFile := config.DataFile(cfg)
	fmt.Printf("    Data file:  %s", dataFile)
	if _, err := os.Stat(dataFile); err != nil {
		fmt.Print("  (not created yet)")
	}
	fmt.Println()
	fmt.Printf("    Chart days: %d\n", config.ChartDays(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `consist setup` to reconfigure.")
	return nil
}
