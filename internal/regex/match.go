// Package regex implements the regular expression predicates exposed to SQL
// as scalar functions.
//
// Every call compiles its pattern, searches the subject without anchoring
// and reports 1 for a match and 0 otherwise. A nil subject or pattern is
// "no match" and is decided before the pattern is compiled.
package regex

// Match reports whether pattern matches somewhere in subject using
// DefaultEngine.
func Match(subject, pattern *string, caseInsensitive bool) (int, error) {
	return DefaultEngine.Match(subject, pattern, caseInsensitive)
}

// Regex is the case-sensitive predicate.
func Regex(subject, pattern *string) (int, error) {
	return Match(subject, pattern, false)
}

// IRegex is the case-insensitive predicate.
func IRegex(subject, pattern *string) (int, error) {
	return Match(subject, pattern, true)
}

// Match reports whether pattern matches somewhere in subject with engine e.
func (e Engine) Match(subject, pattern *string, caseInsensitive bool) (int, error) {
	if subject == nil || pattern == nil {
		return 0, nil
	}
	m, err := Compile(e, *pattern, caseInsensitive)
	if err != nil {
		return 0, err
	}
	ok, err := m.MatchString(*subject)
	if err != nil {
		return 0, err
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}
