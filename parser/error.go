package parser

import (
	"fmt"

	"github.com/SirTony/lumi/token"
)

// ErrorKind discriminates the ways parsing can fail.
type ErrorKind int

const (
	// UnexpectedEOI means the token stream ran out mid-parse. The lexer
	// guarantees a trailing EndOfInput so this indicates an internal bug.
	UnexpectedEOI ErrorKind = iota

	// Unexpected means a specific token was required and something else
	// was found.
	Unexpected

	// ExpectSegment means a token that cannot begin a segment was found
	// where a segment must start.
	ExpectSegment

	// ExpectString means a redirection target was something other than a
	// string or string interpolation.
	ExpectString
)

// Error is a parse error. Span is nil for UnexpectedEOI because there is no
// token left to point at, every other kind carries the offending span so
// the REPL can draw a caret under it.
type Error struct {
	Expect string // What was required, set for Unexpected
	Found  string // What was actually there, set for Unexpected and ExpectSegment
	Kind   ErrorKind
	Span   *token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case Unexpected:
		return fmt.Sprintf("unexpected %s, expecting %s at position %d", e.Found, e.Expect, e.Span.Start.Index)
	case ExpectSegment:
		return fmt.Sprintf("expecting shell segment, found %s at position %d", e.Found, e.Span.Start.Index)
	case ExpectString:
		return fmt.Sprintf("redirection target must be a string or string interpolation (at position %d)", e.Span.Start.Index)
	default:
		return "unexpected end-of-input (malformed token stream, indicates an internal bug)"
	}
}
