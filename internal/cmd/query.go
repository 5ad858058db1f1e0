package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/db"
)

type queryOptions struct {
	dbPath     string
	migrations string
	db         db.Options
}

var queryCmd = &cobra.Command{
	Use:   "query SQL [ARGS...]",
	Short: "Run a SQL statement with the functions registered",
	Long:  "Open a SQLite database with django_regex, django_iregex, regexp, django_lpad and django_rpad registered, apply migrations if configured, run SQL with ARGS bound to its placeholders and print the result as a table.",
	Example: `  sqlregex query "SELECT django_regex('hello123', '[0-9]+')"
  sqlregex query --db app.db "SELECT name FROM people WHERE django_iregex(name, ?) = 1" '^a'
  sqlregex query --migrate ./migrations "SELECT * FROM codes WHERE code REGEXP '^[0-9]+$'"`,
	Args: cobra.MinimumNArgs(1),
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
		if cmd.Flags().Changed("read-only") {
			opts.db.ReadOnly, _ = cmd.Flags().GetBool("read-only")
		}

		params := make([]any, len(args)-1)
		for i, a := range args[1:] {
			params[i] = a
		}
		return runQuery(cmd.Context(), cmd.OutOrStdout(), opts, args[0], params)
	},
}

func init() {
	queryCmd.Flags().String("db", "", "SQLite database file (default in-memory)")
	queryCmd.Flags().String("migrate", "", "Directory of goose SQL migrations to apply first")
	queryCmd.Flags().Bool("read-only", false, "Reject statements that write")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(ctx context.Context, w io.Writer, opts queryOptions, query string, args []any) error {
	conn, err := db.Connect(ctx, opts.dbPath, opts.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	if opts.migrations != "" {
		applied, err := db.Migrate(ctx, conn, os.DirFS(opts.migrations))
		if err != nil {
			return err
		}
		slog.Debug("Migrations complete", "dir", opts.migrations, "applied", len(applied))
	}

	start := time.Now()
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	headers, records, err := collectRows(rows)
	if err != nil {
		return err
	}
	slog.Debug("Query complete", "rows", len(records), "duration", time.Since(start))

	if len(headers) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(records...)
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s %s\n", humanize.Comma(int64(len(records))), plural(len(records), "row", "rows"))
	return err
}

func collectRows(rows *sql.Rows) ([]string, [][]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("reading columns: %w", err)
	}

	var records [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scanning row: %w", err)
		}
		record := make([]string, len(cols))
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("running query: %w", err)
	}
	return cols, records, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(v)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
