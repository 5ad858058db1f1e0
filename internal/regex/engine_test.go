package regex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	t.Parallel()

	cases := map[string]Engine{
		"":       DefaultEngine,
		"dotnet": EngineDotNet,
		" RE2 ":  EngineRE2,
		"DotNet": EngineDotNet,
	}
	for name, want := range cases {
		got, err := ParseEngine(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseEngine("pcre")
	require.ErrorContains(t, err, `unknown regex engine "pcre"`)
}

func TestEngineString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dotnet", EngineDotNet.String())
	require.Equal(t, "re2", EngineRE2.String())
	require.Equal(t, "engine(9)", Engine(9).String())
}

func TestCompileUnknownEngine(t *testing.T) {
	t.Parallel()

	_, err := Compile(Engine(9), "abc", false)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrPatternSyntax)
}

func TestCompileReusable(t *testing.T) {
	t.Parallel()

	m, err := Compile(EngineDotNet, `^\p{Lu}`, false)
	require.NoError(t, err)

	ok, err := m.MatchString("Upper")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.MatchString("lower")
	require.NoError(t, err)
	require.False(t, ok)
}
