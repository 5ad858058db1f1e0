package regex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Engine selects the regular expression implementation used to compile
// patterns.
type Engine int

const (
	// EngineDotNet follows .NET System.Text.RegularExpressions semantics.
	EngineDotNet Engine = iota
	// EngineRE2 uses Go's RE2 engine.
	EngineRE2
)

// DefaultEngine is used by Match, Regex and IRegex.
const DefaultEngine = EngineDotNet

var engineNames = map[Engine]string{
	EngineDotNet: "dotnet",
	EngineRE2:    "re2",
}

func (e Engine) String() string {
	if name, ok := engineNames[e]; ok {
		return name
	}
	return fmt.Sprintf("engine(%d)", int(e))
}

// ParseEngine resolves an engine by name. The empty string selects
// DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultEngine, nil
	}
	for e, n := range engineNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown regex engine %q (want dotnet or re2)", name)
}

// Matcher reports whether a compiled pattern occurs anywhere in s.
type Matcher interface {
	MatchString(s string) (bool, error)
}

// Compile compiles pattern with the given engine. A pattern that does not
// parse yields a *SyntaxError.
func Compile(e Engine, pattern string, caseInsensitive bool) (Matcher, error) {
	switch e {
	case EngineDotNet:
		opts := regexp2.None
		if caseInsensitive {
			opts |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(pattern, opts)
		if err != nil {
			return nil, &SyntaxError{Engine: e, Pattern: pattern, Err: err}
		}
		return dotnetMatcher{re: re}, nil
	case EngineRE2:
		expr := pattern
		if caseInsensitive {
			expr = "(?i)" + pattern
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &SyntaxError{Engine: e, Pattern: pattern, Err: err}
		}
		return re2Matcher{re: re}, nil
	default:
		return nil, fmt.Errorf("unknown regex engine %s", e)
	}
}

type dotnetMatcher struct {
	re *regexp2.Regexp
}

func (m dotnetMatcher) MatchString(s string) (bool, error) {
	ok, err := m.re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("matching %q: %w", m.re.String(), err)
	}
	return ok, nil
}

type re2Matcher struct {
	re *regexp.Regexp
}

func (m re2Matcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s), nil
}
