package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagLogDate string
	flagLogNote string
)

var logCmd = &cobra.Command{
	Use:   "log CATEGORY MINUTES",
	Short: "Log time against a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagLogDate, "date", "d", "", "Date as YYYY-MM-DD (default: today)")
	logCmd.Flags().StringVarP(&flagLogNote, "note", "m", "", "Optional note")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	st, _ := openStore()

	c, err := st.Resolve(args[0])
	if err != nil {
		return err
	}

	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("minutes must be a number, got %q", args[1])
	}

	date := flagLogDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	e, err := st.AddLog(c.ID, minutes, date, flagLogNote)
	if err != nil {
		return err
	}

	streak := analytics.CategoryStreak(st.Snapshot(), c.ID, time.Now())
	fmt.Printf("\n  %s Logged %s to %q on %s",
		cli.Good("✓"), cli.FormatMinutes(e.Minutes), c.Name, e.Date)
	if streak > 1 {
		fmt.Printf("  (streak: %s)", cli.FormatStreak(streak))
	}
	fmt.Println()
	fmt.Println()

	return nil
}
