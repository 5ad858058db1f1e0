package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/db"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [PATTERN]",
	Short: "List tables and views, optionally filtered with django_iregex",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		opts := queryOptions{
			dbPath:     cfg.Database.Path,
			migrations: cfg.Migrations,
			db:         cfg.DBOptions(),
		}
		if cmd.Flags().Changed("db") {
			opts.dbPath, _ = cmd.Flags().GetString("db")
		}
		if cmd.Flags().Changed("migrate") {
			opts.migrations, _ = cmd.Flags().GetString("migrate")
		}
		columns, _ := cmd.Flags().GetBool("columns")

		var pattern *string
		if len(args) == 1 {
			pattern = &args[0]
		}
		return runTables(cmd.Context(), cmd.OutOrStdout(), opts, pattern, columns)
	},
}

func init() {
	tablesCmd.Flags().String("db", "", "SQLite database file (default in-memory)")
	tablesCmd.Flags().String("migrate", "", "Directory of goose SQL migrations to apply first")
	tablesCmd.Flags().Bool("columns", false, "Describe the columns of every listed table")

	rootCmd.AddCommand(tablesCmd)
}

func runTables(ctx context.Context, w io.Writer, opts queryOptions, pattern *string, columns bool) error {
	conn, err := db.Connect(ctx, opts.dbPath, opts.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	if opts.migrations != "" {
		if _, err := db.Migrate(ctx, conn, os.DirFS(opts.migrations)); err != nil {
			return err
		}
	}

	tables, err := db.Tables(ctx, conn, pattern)
	if err != nil {
		return err
	}

	headers := []string{"NAME", "TYPE"}
	if columns {
		headers = append(headers, "COLUMN", "COLUMN TYPE", "NULL", "DEFAULT", "PK")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, ti := range tables {
		if !columns {
			t.Row(ti.Name, ti.Type)
			continue
		}
		cols, err := db.Columns(ctx, conn, ti.Name)
		if err != nil {
			return err
		}
		for _, c := range cols {
			def := ""
			if c.Default.Valid {
				def = c.Default.String
			}
			t.Row(ti.Name, ti.Type, c.Name, c.Type, yesNo(!c.NotNull), def, yesNo(c.PrimaryKey))
		}
	}
	_, err = fmt.Fprintln(w, t.String())
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
