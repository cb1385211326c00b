package lehar

import "errors"

// The three fatal error kinds of a build. Every failure wraps exactly one
// of them, so callers can branch with errors.Is without string matching.
var (
	ErrRead  = errors.New("lehar: read error")
	ErrParse = errors.New("lehar: parse error")
	ErrWrite = errors.New("lehar: write error")
)
