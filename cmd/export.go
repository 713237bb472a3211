package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var flagExportTo string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the data file to a SQLite database",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportTo, "to", "o", "", "Destination SQLite file (default: data file with .db extension)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	st, _ := openStore()

	dest := flagExportTo
	if dest == "" {
		dest = strings.TrimSuffix(st.Path(), filepath.Ext(st.Path())) + ".db"
	}

	if err := st.Export(dest); err != nil {
		return err
	}

	snap := st.Snapshot()
	fmt.Printf("\n  Exported %d categories and %d log entries to %s\n\n",
		len(snap.Categories), len(snap.Logs), dest)
	return nil
}
