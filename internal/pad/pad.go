// Package pad implements the LPAD and RPAD string functions registered next
// to the regex predicates.
package pad

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxLength is the largest result in bytes, SQLite's default
// SQLITE_MAX_LENGTH.
const MaxLength = 1_000_000_000

// ErrTooBig is returned when a padded result would exceed MaxLength.
var ErrTooBig = errors.New("string or blob too big")

// LPad left-pads s with fill until it is length runes long. A result longer
// than length is cut to its first length runes. Any nil argument yields nil.
func LPad(s *string, length *int64, fill *string) (*string, error) {
	return apply(s, length, fill, true)
}

// RPad is LPad padding on the right.
func RPad(s *string, length *int64, fill *string) (*string, error) {
	return apply(s, length, fill, false)
}

func apply(s *string, length *int64, fill *string, left bool) (*string, error) {
	if s == nil || length == nil || fill == nil {
		return nil, nil
	}
	out, err := padded(*s, *length, *fill, left)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func padded(s string, length int64, fill string, left bool) (string, error) {
	if length <= 0 {
		return "", nil
	}
	n := int64(utf8.RuneCountInString(s))
	if n >= length {
		return string([]rune(s)[:length]), nil
	}
	if fill == "" {
		return s, nil
	}
	if length > MaxLength {
		return "", ErrTooBig
	}

	need := length - n
	fillRunes := []rune(fill)
	cycles, rest := need/int64(len(fillRunes)), need%int64(len(fillRunes))
	size := int64(len(s)) + cycles*int64(len(fill)) + int64(len(string(fillRunes[:rest])))
	if size > MaxLength {
		return "", ErrTooBig
	}

	var b strings.Builder
	b.Grow(int(size))
	if !left {
		b.WriteString(s)
	}
	for range cycles {
		b.WriteString(fill)
	}
	b.WriteString(string(fillRunes[:rest]))
	if left {
		b.WriteString(s)
	}
	return b.String(), nil
}
