package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegexLookup(t *testing.T) {
	t.Parallel()

	tpl, err := RegexLookup("regex")
	require.NoError(t, err)
	require.Equal(t, "django_regex(%s, %s) = 1", tpl)

	tpl, err = RegexLookup("iregex")
	require.NoError(t, err)
	require.Equal(t, "django_iregex(name, ?) = 1", fmt.Sprintf(tpl, "name", "?"))

	_, err = RegexLookup("contains")
	require.ErrorIs(t, err, ErrUnknownLookup)
}

func TestRegexLookupRunsAgainstDatabase(t *testing.T) {
	t.Parallel()
	conn := setupTestDB(t)

	tpl, err := RegexLookup("iregex")
	require.NoError(t, err)

	query := "SELECT name FROM people WHERE " + fmt.Sprintf(tpl, "name", "?") + " ORDER BY id"
	require.Equal(t, []string{"Alice"}, queryStrings(t, conn, query, "^alice$"))
}
