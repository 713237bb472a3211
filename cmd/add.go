package cmd

import (
	"fmt"

	"github.com/D3V3LOP3R-wizard/consist/internal/cli"
	"github.com/D3V3LOP3R-wizard/consist/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddGoal  int
	flagAddColor string
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().IntVarP(&flagAddGoal, "goal", "g", 30, "Daily goal in minutes")
	addCmd.Flags().StringVarP(&flagAddColor, "color", "c", "", "Hex color like #667eea (default: next palette color)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	st, _ := openStore()

	color := flagAddColor
	if color == "" {
		color = model.DefaultPalette[len(st.Categories())%len(model.DefaultPalette)]
	}

	c, err := st.AddCategory(args[0], flagAddGoal, color)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s Added %q with a %s/day goal\n\n",
		cli.Swatch(c.Color), c.Name, cli.FormatMinutes(c.Goal))
	return nil
}
