package db

import (
	"errors"
	"fmt"
)

// ErrUnknownLookup is returned for a lookup type without a SQL mapping.
var ErrUnknownLookup = errors.New("unknown lookup")

var lookups = map[string]string{
	"regex":  "django_regex(%s, %s) = 1",
	"iregex": "django_iregex(%s, %s) = 1",
}

// RegexLookup returns the WHERE clause template for a regex lookup. The two
// %s verbs take the column expression and the pattern placeholder.
func RegexLookup(lookupType string) (string, error) {
	tpl, ok := lookups[lookupType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLookup, lookupType)
	}
	return tpl, nil
}
