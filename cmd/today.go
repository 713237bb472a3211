package cmd

import (
	"fmt"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's progress against each goal",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	st, _ := openStore()
	snap := st.Snapshot()

	if len(snap.Categories) == 0 {
		fmt.Println("\n  No categories yet.")
		return nil
	}

	now := time.Now()
	progress := analytics.TodayProgress(snap, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TODAY  %s", cli.FormatDate(now))))
	fmt.Println()

	total := 0
	done := 0
	for _, p := range progress {
		total += p.Minutes
		if p.Minutes > 0 {
			done++
		}
		fmt.Printf("  %s %-14s %s\n", cli.Swatch(p.Color), p.Name, cli.RenderGoalBar(p.Minutes, p.Goal, 24))
	}

	fmt.Println()
	fmt.Printf("  %s logged across %d of %d categories\n",
		cli.FormatMinutes(total), done, len(progress))
	if done == len(progress) {
		fmt.Println(cli.Good("  Every category logged today."))
	}
	fmt.Println()

	return nil
}
