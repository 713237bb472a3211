package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the data file now",
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	st, _ := openStore()

	if err := st.Save(); err != nil {
		return err
	}

	snap := st.Snapshot()
	fmt.Printf("\n  Saved %d categories and %d log entries to %s\n\n",
		len(snap.Categories), len(snap.Logs), st.Path())
	return nil
}
