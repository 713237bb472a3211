package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagRemoveYes bool

var removeCmd = &cobra.Command{
	Use:     "remove CATEGORY",
	Aliases: []string{"rm"},
	Short:   "Remove a category and its log entries",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&flagRemoveYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	st, _ := openStore()

	c, err := st.Resolve(args[0])
	if err != nil {
		return err
	}

	entries := 0
	for _, l := range st.Logs() {
		if l.CategoryID == c.ID {
			entries++
		}
	}

	if !flagRemoveYes {
		fmt.Printf("  Remove %q and its %d log entries? [y/N] ", c.Name, entries)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	if err := st.DeleteCategory(c.ID); err != nil {
		return err
	}

	fmt.Printf("\n  Removed %q (%d log entries deleted)\n\n", c.Name, entries)
	return nil
}
