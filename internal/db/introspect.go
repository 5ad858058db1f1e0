package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// TableInfo names a table or view.
type TableInfo struct {
	Name string
	// Type is "t" for a table and "v" for a view.
	Type string
}

// Column describes one column of a table.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	Default    sql.NullString
	PrimaryKey bool
}

// Tables lists the user tables and views ordered by name. A non-nil pattern
// keeps only names django_iregex matches. goose bookkeeping and SQLite
// internal tables are skipped.
func Tables(ctx context.Context, conn *sql.DB, pattern *string) ([]TableInfo, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT name, type
		FROM sqlite_master
		WHERE type IN ('table', 'view')
		  AND name NOT LIKE 'sqlite_%'
		  AND name <> 'goose_db_version'
		  AND (?1 IS NULL OR django_iregex(name, ?1) = 1)
		ORDER BY name
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return nil, fmt.Errorf("scanning table: %w", err)
		}
		tables = append(tables, TableInfo{Name: name, Type: typ[:1]})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}

// Columns describes the columns of table in declaration order.
func Columns(ctx context.Context, conn *sql.DB, table string) ([]Column, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier(table)))
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var (
			cid     int
			col     Column
			notnull int
			pk      int
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &notnull, &col.Default, &pk); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.NotNull = notnull > 0
		col.PrimaryKey = pk > 0
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describing %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("describing %s: no such table", table)
	}
	return columns, nil
}

// quoteIdentifier quotes a SQLite identifier (table or column name).
func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
