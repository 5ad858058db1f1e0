package db

import (
	"database/sql"
	"embed"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/migrations/*.sql
var fixtures embed.FS

func fixtureFS(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(fixtures, "testdata/migrations")
	require.NoError(t, err)
	return sub
}

// setupTestDB opens a file database in a temp dir with the fixture
// migrations applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Connect(t.Context(), filepath.Join(t.TempDir(), "test.db"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = Migrate(t.Context(), conn, fixtureFS(t))
	require.NoError(t, err)
	return conn
}

func queryStrings(t *testing.T, conn *sql.DB, query string, args ...any) []string {
	t.Helper()

	rows, err := conn.QueryContext(t.Context(), query, args...)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		out = append(out, s)
	}
	require.NoError(t, rows.Err())
	return out
}
