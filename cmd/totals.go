package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/model"

	"github.com/spf13/cobra"
)

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Time per category with shares",
	RunE:  runTotals,
}

func init() {
	rootCmd.AddCommand(totalsCmd)
}

func runTotals(_ *cobra.Command, _ []string) error {
	st, _ := openStore()
	snap := st.Snapshot()

	if len(snap.Categories) == 0 {
		fmt.Println("\n  No categories yet.")
		return nil
	}

	title := "TIME PER CATEGORY"
	if flagDays > 0 {
		// Dates are YYYY-MM-DD, so string comparison is chronological.
		since := time.Now().AddDate(0, 0, -(flagDays - 1)).Format("2006-01-02")
		kept := make([]model.LogEntry, 0, len(snap.Logs))
		for _, l := range snap.Logs {
			if l.Date >= since {
				kept = append(kept, l)
			}
		}
		snap.Logs = kept
		title = fmt.Sprintf("TIME PER CATEGORY  Last %dd", flagDays)
	}

	dist := analytics.CategoryDistribution(snap)

	maxMinutes := 0
	for _, d := range dist {
		if d.Minutes > maxMinutes {
			maxMinutes = d.Minutes
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	for _, d := range dist {
		// Block runes are multi-byte, so pad the bar by rune count.
		bar := cli.RenderHorizontalBar(float64(d.Minutes), float64(maxMinutes), 28)
		bar += strings.Repeat(" ", 28-len([]rune(bar)))
		fmt.Printf("  %s %-14s %s %8s  %s\n",
			cli.Swatch(d.Color), d.Name, bar,
			cli.FormatMinutes(d.Minutes), cli.Muted(cli.FormatPercent(d.SharePercent)))
	}
	fmt.Println()

	return nil
}
