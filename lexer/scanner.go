package lexer

import (
	"strings"

	"github.com/SirTony/lumi/token"
)

// scanner is a rune-level cursor over the source text with arbitrary
// lookahead and a LIFO mark stack for span capture.
//
// A scanner is cheap to clone, the lexer forks a copy to tokenize the body
// of a string interpolation and then adopts the copy's position as its own.
type scanner struct {
	src    []rune
	marks  []token.Location
	pos    int // Rune offset of the next unread rune
	line   int
	column int
}

// newScanner returns a scanner positioned at the start of source.
func newScanner(source string) *scanner {
	return &scanner{
		src:    []rune(source),
		line:   1,
		column: 1,
	}
}

// clone returns an independent copy of the scanner, the source is shared
// but position and marks are not.
func (s *scanner) clone() *scanner {
	c := *s
	c.marks = append([]token.Location(nil), s.marks...)
	return &c
}

// here returns the scanner's current position.
func (s *scanner) here() token.Location {
	return token.Location{Index: s.pos, Line: s.line, Column: s.column}
}

// pushMark remembers the current position for later span capture.
func (s *scanner) pushMark() {
	s.marks = append(s.marks, s.here())
}

// popMark removes and returns the most recently pushed mark.
func (s *scanner) popMark() (token.Location, bool) {
	if len(s.marks) == 0 {
		return token.Location{}, false
	}
	mark := s.marks[len(s.marks)-1]
	s.marks = s.marks[:len(s.marks)-1]
	return mark, true
}

// popSpan pops the most recent mark and returns the span from it to the
// current position.
func (s *scanner) popSpan() (token.Span, bool) {
	start, ok := s.popMark()
	if !ok {
		return token.Span{}, false
	}
	return token.Span{Start: start, End: s.here()}, true
}

// isEmpty reports whether the input is exhausted.
func (s *scanner) isEmpty() bool {
	return s.pos >= len(s.src)
}

// peek returns the next rune without consuming it.
func (s *scanner) peek() (rune, bool) {
	return s.peekAhead(0)
}

// peekAhead returns the rune distance places past the next one without
// consuming anything, distance 0 is equivalent to peek.
func (s *scanner) peekAhead(distance int) (rune, bool) {
	if s.pos+distance >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos+distance], true
}

// consume returns the next rune and advances. A newline bumps the line
// count and resets the column, the newline itself then counts as the first
// column of the new line.
func (s *scanner) consume() (rune, bool) {
	if s.isEmpty() {
		return 0, false
	}
	c := s.src[s.pos]
	if c == '\n' {
		s.line++
		s.column = 0
	}
	s.pos++
	s.column++
	return c, true
}

// isNext reports whether the unread input starts with lit.
func (s *scanner) isNext(lit string) bool {
	for i, c := range []rune(lit) {
		next, ok := s.peekAhead(i)
		if !ok || next != c {
			return false
		}
	}
	return true
}

// takeIfNext consumes lit if the unread input starts with it and reports
// whether it did.
func (s *scanner) takeIfNext(lit string) bool {
	if !s.isNext(lit) {
		return false
	}
	for range []rune(lit) {
		s.consume()
	}
	return true
}

// skipWhile consumes runes for as long as the predicate holds.
func (s *scanner) skipWhile(pred func(rune) bool) {
	for {
		c, ok := s.peek()
		if !ok || !pred(c) {
			return
		}
		s.consume()
	}
}

// takeWhile consumes runes for as long as the predicate holds and returns
// what was consumed.
func (s *scanner) takeWhile(pred func(rune) bool) string {
	var b strings.Builder
	for {
		c, ok := s.peek()
		if !ok || !pred(c) {
			return b.String()
		}
		s.consume()
		b.WriteRune(c)
	}
}
