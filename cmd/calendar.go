package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var flagCalMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Monthly completion calendar",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVarP(&flagCalMonth, "month", "m", "", "Month to show as YYYY-MM (default: current)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, _ []string) error {
	st, _ := openStore()
	snap := st.Snapshot()

	now := time.Now()
	year, month := now.Year(), now.Month()
	if flagCalMonth != "" {
		parsed, err := time.Parse("2006-01", flagCalMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q, expected YYYY-MM", flagCalMonth)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	ms := analytics.Month(snap, year, month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"))))
	fmt.Println()

	fmt.Println("   Mo Tu We Th Fr Sa Su")
	var line strings.Builder
	line.WriteString("  ")
	line.WriteString(strings.Repeat("   ", ms.FirstWeekday))

	col := ms.FirstWeekday
	for d := 1; d <= ms.DaysInMonth; d++ {
		cell := fmt.Sprintf("%3d", d)
		switch {
		case ms.CompleteDays[d]:
			cell = cli.Good(cell)
		case ms.LoggedDays[d]:
			cell = cli.Warn(cell)
		default:
			cell = cli.Muted(cell)
		}
		line.WriteString(cell)

		col++
		if col == 7 {
			fmt.Println(line.String())
			line.Reset()
			line.WriteString("  ")
			col = 0
		}
	}
	if col > 0 {
		fmt.Println(line.String())
	}

	fmt.Println()
	fmt.Printf("  %s complete   %s logged only\n", cli.Good("■"), cli.Warn("■"))
	fmt.Printf("  Completion: %d%% (%d of %d days)\n",
		ms.CompletionRate, len(ms.CompleteDays), ms.DaysInMonth)
	fmt.Println()

	return nil
}
