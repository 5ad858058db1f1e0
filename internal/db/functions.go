package db

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tds-django/sqlregex/internal/pad"
	"github.com/tds-django/sqlregex/internal/regex"
)

// Function is a deterministic SQL scalar function registered on every
// connection opened through DriverName.
//
// Call receives driver-neutral values (nil, int64, float64, string or
// []byte) and returns nil, int64 or string. A returned error fails the
// statement that invoked the function.
type Function struct {
	Name    string
	Args    int
	Summary string
	Call    func(args []any) (any, error)
}

// Functions returns the SQL function catalog.
func Functions() []Function {
	return []Function{
		{
			Name:    "django_regex",
			Args:    2,
			Summary: "django_regex(subject, pattern): 1 when pattern matches subject, case-sensitive (.NET syntax)",
			Call:    predicate(regex.Regex, 0, 1),
		},
		{
			Name:    "django_iregex",
			Args:    2,
			Summary: "django_iregex(subject, pattern): 1 when pattern matches subject ignoring case (.NET syntax)",
			Call:    predicate(regex.IRegex, 0, 1),
		},
		{
			Name:    "regexp",
			Args:    2,
			Summary: "regexp(pattern, subject): backs the X REGEXP Y operator (RE2 syntax)",
			Call: predicate(func(subject, pattern *string) (int, error) {
				return regex.EngineRE2.Match(subject, pattern, false)
			}, 1, 0),
		},
		{
			Name:    "django_lpad",
			Args:    3,
			Summary: "django_lpad(text, length, fill): left-pads or truncates text to length characters",
			Call:    padding(pad.LPad),
		},
		{
			Name:    "django_rpad",
			Args:    3,
			Summary: "django_rpad(text, length, fill): right-pads or truncates text to length characters",
			Call:    padding(pad.RPad),
		},
	}
}

func (f Function) invoke(args []any) (any, error) {
	if len(args) != f.Args {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", f.Name, f.Args, len(args))
	}
	return f.Call(args)
}

func predicate(fn func(subject, pattern *string) (int, error), subject, pattern int) func([]any) (any, error) {
	return func(args []any) (any, error) {
		matched, err := fn(text(args[subject]), text(args[pattern]))
		if err != nil {
			return nil, err
		}
		return int64(matched), nil
	}
}

func padding(fn func(s *string, length *int64, fill *string) (*string, error)) func([]any) (any, error) {
	return func(args []any) (any, error) {
		out, err := fn(text(args[0]), integer(args[1]), text(args[2]))
		if err != nil || out == nil {
			return nil, err
		}
		return *out, nil
	}
}

// text converts a SQL argument to the text SQLite would produce for it.
func text(v any) *string {
	var s string
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'g', 15, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
	case bool:
		s = "0"
		if v {
			s = "1"
		}
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

// integer converts a SQL argument the way CAST(x AS INTEGER) does for the
// common cases: text that does not parse as a number is 0.
func integer(v any) *int64 {
	var n int64
	switch v := v.(type) {
	case nil:
		return nil
	case int64:
		n = v
	case float64:
		n = truncate(v)
	case bool:
		if v {
			n = 1
		}
	default:
		s := strings.TrimSpace(*text(v))
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			n = i
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			n = truncate(f)
		}
	}
	return &n
}

// truncate converts f toward zero, saturating at the int64 range. NaN is 0.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
