package lexer

import (
	"fmt"

	"github.com/SirTony/lumi/token"
)

// ErrorKind discriminates the ways lexing can fail.
type ErrorKind int

const (
	// UnexpectedChar means the input contained a character no tokenizer accepts.
	UnexpectedChar ErrorKind = iota
	// UnexpectedEOI means the input ended inside a construct that must be closed.
	UnexpectedEOI
)

// Error is a lexical error carrying the span of input that caused it, the
// REPL uses the span to draw a caret under the offending position.
type Error struct {
	Reason string // Why the input ended early, set for UnexpectedEOI
	Char   rune   // The offending character, set for UnexpectedChar
	Kind   ErrorKind
	Span   token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEOI:
		return fmt.Sprintf("unexpected end-of-input (%s) at position %d", e.Reason, e.Span.Start.Index)
	default:
		return fmt.Sprintf("unexpected character %q (0x%X) at position %d", e.Char, e.Char, e.Span.Start.Index)
	}
}
