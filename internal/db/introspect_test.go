package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	t.Parallel()
	conn := setupTestDB(t)

	_, err := conn.ExecContext(t.Context(), `CREATE VIEW people_with_email AS SELECT * FROM people WHERE email IS NOT NULL`)
	require.NoError(t, err)

	tables, err := Tables(t.Context(), conn, nil)
	require.NoError(t, err)
	require.Equal(t, []TableInfo{
		{Name: "codes", Type: "t"},
		{Name: "people", Type: "t"},
		{Name: "people_with_email", Type: "v"},
	}, tables)

	pattern := "^PEOPLE"
	tables, err = Tables(t.Context(), conn, &pattern)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	bad := "("
	_, err = Tables(t.Context(), conn, &bad)
	require.ErrorContains(t, err, "invalid pattern")
}

func TestColumns(t *testing.T) {
	t.Parallel()
	conn := setupTestDB(t)

	cols, err := Columns(t.Context(), conn, "people")
	require.NoError(t, err)
	require.Len(t, cols, 3)

	require.Equal(t, "id", cols[0].Name)
	require.Equal(t, "INTEGER", cols[0].Type)
	require.True(t, cols[0].PrimaryKey)

	require.Equal(t, "name", cols[1].Name)
	require.True(t, cols[1].NotNull)

	require.Equal(t, "email", cols[2].Name)
	require.False(t, cols[2].NotNull)
	require.False(t, cols[2].Default.Valid)

	_, err = Columns(t.Context(), conn, `no"such`)
	require.ErrorContains(t, err, "no such table")
}

func TestQuoteIdentifier(t *testing.T) {
	t.Parallel()

	require.Equal(t, `"people"`, quoteIdentifier("people"))
	require.Equal(t, `"a""b"`, quoteIdentifier(`a"b`))
}
