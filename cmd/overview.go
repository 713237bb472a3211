package cmd

import (
	"fmt"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Streaks, completion rate, and today's goals",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(_ *cobra.Command, _ []string) error {
	st, cfg := openStore()
	snap := st.Snapshot()

	if len(snap.Categories) == 0 {
		fmt.Println("\n  No categories yet.")
		fmt.Println("  Add one with `consist add NAME --goal MINUTES`.")
		return nil
	}

	now := time.Now()
	stats := analytics.Overview(snap, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CONSIST  %s", cli.FormatDate(now))))
	fmt.Println()

	rows := [][]string{
		{"Current streak", cli.FormatStreak(stats.CurrentStreak)},
		{"Longest streak", cli.FormatStreak(stats.LongestStreak)},
		{"This month", fmt.Sprintf("%d%% complete", stats.MonthlyRate)},
		{"Total entries", cli.FormatNumber(int64(stats.TotalLogs))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Println("  Today")
	for _, p := range analytics.TodayProgress(snap, now) {
		fmt.Printf("  %s %-14s %s\n", cli.Swatch(p.Color), p.Name, cli.RenderGoalBar(p.Minutes, p.Goal, 20))
	}

	days := chartDays(cfg)
	totals := analytics.DailyTotals(snap, days, now)
	values := make([]float64, len(totals))
	for i, d := range totals {
		values[i] = float64(d.Minutes)
	}
	fmt.Println()
	fmt.Printf("  Last %dd  %s\n", days, cli.RenderSparkline(values))
	fmt.Println()

	return nil
}
