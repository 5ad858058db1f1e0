package regex

import (
	"errors"
	"fmt"
)

// ErrPatternSyntax is matched by every error returned for a pattern that
// cannot be compiled.
var ErrPatternSyntax = errors.New("pattern syntax error")

// SyntaxError reports a pattern the engine could not parse.
type SyntaxError struct {
	Engine  Engine
	Pattern string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrPatternSyntax }
