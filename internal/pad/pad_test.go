package pad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }
func num(n int64) *int64 { return &n }

func TestLPad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		s      string
		length int64
		fill   string
		want   string
	}{
		{"pads", "abc", 5, "*", "**abc"},
		{"repeats fill", "abc", 8, "xy", "xyxyxabc"},
		{"exact", "abc", 3, "*", "abc"},
		{"truncates", "abcdef", 3, "*", "abc"},
		{"zero length", "abc", 0, "*", ""},
		{"negative length", "abc", -1, "*", ""},
		{"empty fill", "abc", 6, "", "abc"},
		{"runes", "ñu", 4, "é", "ééñu"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := LPad(str(tc.s), num(tc.length), str(tc.fill))
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tc.want, *got)
		})
	}
}

func TestRPad(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s      string
		length int64
		fill   string
		want   string
	}{
		{"abc", 5, "*", "abc**"},
		{"abc", 8, "xy", "abcxyxyx"},
		{"abc", 2, "*", "ab"},
		{"ñu", 4, "é", "ñuéé"},
	}
	for _, tc := range cases {
		got, err := RPad(str(tc.s), num(tc.length), str(tc.fill))
		require.NoError(t, err)
		require.Equal(t, tc.want, *got)
	}
}

func TestPadNull(t *testing.T) {
	t.Parallel()

	for _, got := range []func() (*string, error){
		func() (*string, error) { return LPad(nil, num(3), str("*")) },
		func() (*string, error) { return LPad(str("a"), nil, str("*")) },
		func() (*string, error) { return RPad(str("a"), num(3), nil) },
	} {
		s, err := got()
		require.NoError(t, err)
		require.Nil(t, s)
	}
}

func TestPadTooBig(t *testing.T) {
	t.Parallel()

	for _, length := range []int64{math.MaxInt64, 1 << 40, MaxLength + 1} {
		got, err := LPad(str("a"), num(length), str("x"))
		require.ErrorIs(t, err, ErrTooBig)
		require.Nil(t, got)

		got, err = RPad(str("a"), num(length), str("x"))
		require.ErrorIs(t, err, ErrTooBig)
		require.Nil(t, got)
	}

	// Multi-byte fill counts bytes, not runes.
	_, err := LPad(str(""), num(MaxLength/2+1), str("é"))
	require.ErrorIs(t, err, ErrTooBig)

	// Truncation and empty fill never grow the input.
	got, err := LPad(str("abc"), num(math.MaxInt64), str(""))
	require.NoError(t, err)
	require.Equal(t, "abc", *got)
}
