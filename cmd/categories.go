package cmd

import (
	"fmt"
	"time"

	"github.com/D3V3LOP3R-wizard/consist/internal/analytics"
	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List categories with goals, totals, and streaks",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	st, _ := openStore()
	snap := st.Snapshot()

	if len(snap.Categories) == 0 {
		fmt.Println("\n  No categories yet.")
		fmt.Println("  Add one with `consist add NAME --goal MINUTES`.")
		return nil
	}

	now := time.Now()
	totals := analytics.CategoryTotals(snap)

	rows := make([][]string, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		rows = append(rows, []string{
			cli.Swatch(c.Color) + " " + c.Name,
			fmt.Sprintf("%s/day", cli.FormatMinutes(c.Goal)),
			cli.FormatMinutes(totals[c.ID]),
			cli.FormatStreak(analytics.CategoryStreak(snap, c.ID, now)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"Name", "Goal", "Total", "Streak"},
		Rows:    rows,
	}))

	return nil
}
