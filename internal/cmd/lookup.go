package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/db"
)

var lookupCmd = &cobra.Command{
	Use:       "lookup regex|iregex",
	Short:     "Print the WHERE clause template for a regex lookup",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"regex", "iregex"},
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := db.RegexLookup(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tpl)
		return err
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
