package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/db"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the registered SQL functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFunctions(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctions(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ARGS", "DESCRIPTION")
	for _, fn := range db.Functions() {
		t.Row(fn.Name, fmt.Sprint(fn.Args), fn.Summary)
	}
	_, err := fmt.Fprintf(w, "%s\ndriver: %s\n", t.String(), db.DriverName)
	return err
}
