package cmd

import (
	"fmt"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/model"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "This week's completion at a glance",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	st, _ := openStore()
	snap := st.Snapshot()

	now := time.Now()
	week := analytics.Week(snap, now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("THIS WEEK"))
	fmt.Println()

	rows := make([][]string, 0, len(week))
	for _, d := range week {
		rows = append(rows, []string{
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			d.Date.Format("2006-01-02"),
			weekStateMark(d.State),
			cli.FormatMinutes(d.Minutes),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Date", "Done", "Time"},
		Rows:    rows,
	}))

	return nil
}

func weekStateMark(s model.DayState) string {
	switch s {
	case model.DayComplete:
		return cli.Good("✓")
	case model.DayPartial:
		return cli.Warn("◐")
	default:
		return cli.Muted("·")
	}
}
