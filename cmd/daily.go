package cmd

import (
	"fmt"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily time table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	st, cfg := openStore()
	snap := st.Snapshot()

	days := chartDays(cfg)
	totals := analytics.DailyTotals(snap, days, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY TIME  Last %dd", days)))
	fmt.Println()

	rows := make([][]string, 0, len(totals))
	values := make([]float64, 0, len(totals))
	for _, d := range totals {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatMinutes(d.Minutes),
		})
		values = append(values, float64(d.Minutes))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Time"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Trend  %s\n\n", cli.RenderSparkline(values))

	return nil
}
