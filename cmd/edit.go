package cmd

import (
	"fmt"

	"github.com/D3V3LOP3R-wizard/consist/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagEditName  string
	flagEditGoal  int
	flagEditColor string
)

var editCmd = &cobra.Command{
	Use:   "edit CATEGORY",
	Short: "Edit a category's name, goal, or color",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditName, "name", "", "New name")
	editCmd.Flags().IntVarP(&flagEditGoal, "goal", "g", 0, "New daily goal in minutes")
	editCmd.Flags().StringVarP(&flagEditColor, "color", "c", "", "New hex color")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	st, _ := openStore()

	c, err := st.Resolve(args[0])
	if err != nil {
		return err
	}

	name, goal, color := c.Name, c.Goal, c.Color
	if cmd.Flags().Changed("name") {
		name = flagEditName
	}
	if cmd.Flags().Changed("goal") {
		goal = flagEditGoal
	}
	if cmd.Flags().Changed("color") {
		color = flagEditColor
	}

	if name == c.Name && goal == c.Goal && color == c.Color {
		fmt.Println("\n  Nothing to change. Pass --name, --goal, or --color.")
		return nil
	}

	if err := st.EditCategory(c.ID, name, goal, color); err != nil {
		return err
	}

	fmt.Printf("\n  %s Updated %q: %s/day\n\n",
		cli.Swatch(color), name, cli.FormatMinutes(goal))
	return nil
}
