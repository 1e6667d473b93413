package lexer

import (
	"testing"
	"unicode"

	"github.com/SirTony/lumi/token"
)

func TestScannerPositions(t *testing.T) {
	t.Parallel()
	s := newScanner("a\nb")

	if got, want := s.here(), (token.Location{Index: 0, Line: 1, Column: 1}); got != want {
		t.Errorf("start: got %v, wanted %v", got, want)
	}

	s.consume() // 'a'
	if got, want := s.here(), (token.Location{Index: 1, Line: 1, Column: 2}); got != want {
		t.Errorf("after 'a': got %v, wanted %v", got, want)
	}

	s.consume() // '\n' counts as the first column of the new line
	if got, want := s.here(), (token.Location{Index: 2, Line: 2, Column: 1}); got != want {
		t.Errorf("after newline: got %v, wanted %v", got, want)
	}

	s.consume() // 'b'
	if got, want := s.here(), (token.Location{Index: 3, Line: 2, Column: 2}); got != want {
		t.Errorf("after 'b': got %v, wanted %v", got, want)
	}

	if !s.isEmpty() {
		t.Error("scanner should be empty")
	}
	if _, ok := s.consume(); ok {
		t.Error("consume on empty scanner should report not ok")
	}
}

func TestScannerPeek(t *testing.T) {
	t.Parallel()
	s := newScanner("abc")

	if c, ok := s.peek(); !ok || c != 'a' {
		t.Errorf("peek: got %q, %v", c, ok)
	}
	if c, ok := s.peekAhead(2); !ok || c != 'c' {
		t.Errorf("peekAhead(2): got %q, %v", c, ok)
	}
	if _, ok := s.peekAhead(3); ok {
		t.Error("peekAhead past the end should report not ok")
	}

	// Peeking must not consume
	if got := s.here().Index; got != 0 {
		t.Errorf("peek moved the scanner to index %d", got)
	}
}

func TestScannerIsNext(t *testing.T) {
	t.Parallel()
	s := newScanner(">>> out")

	if !s.isNext(">>>") {
		t.Error("isNext(\">>>\") returned false")
	}
	if s.isNext(">>>>") {
		t.Error("isNext(\">>>>\") returned true")
	}

	if !s.takeIfNext(">>>") {
		t.Error("takeIfNext(\">>>\") did not match")
	}
	if got := s.here().Index; got != 3 {
		t.Errorf("takeIfNext consumed to index %d, wanted 3", got)
	}
	if s.takeIfNext("nope") {
		t.Error("takeIfNext(\"nope\") matched")
	}
}

func TestScannerTakeWhile(t *testing.T) {
	t.Parallel()
	s := newScanner("   echo hi")

	s.skipWhile(unicode.IsSpace)
	if got := s.takeWhile(func(c rune) bool { return !unicode.IsSpace(c) }); got != "echo" {
		t.Errorf("got %q, wanted %q", got, "echo")
	}
	if got := s.here().Index; got != 7 {
		t.Errorf("scanner at index %d, wanted 7", got)
	}
}

func TestScannerMarks(t *testing.T) {
	t.Parallel()
	s := newScanner("echo hi")

	s.pushMark()
	s.takeWhile(func(c rune) bool { return !unicode.IsSpace(c) })
	span, ok := s.popSpan()
	if !ok {
		t.Fatal("popSpan on a marked scanner reported not ok")
	}

	want := token.Span{
		Start: token.Location{Index: 0, Line: 1, Column: 1},
		End:   token.Location{Index: 4, Line: 1, Column: 5},
	}
	if span != want {
		t.Errorf("got %+v, wanted %+v", span, want)
	}

	if _, ok := s.popMark(); ok {
		t.Error("popMark on an empty mark stack reported ok")
	}
}

func TestScannerClone(t *testing.T) {
	t.Parallel()
	s := newScanner("hello")
	s.consume()
	s.pushMark()

	c := s.clone()
	c.consume()
	c.consume()
	c.pushMark()

	if got := s.here().Index; got != 1 {
		t.Errorf("consuming on the clone moved the original to index %d", got)
	}
	if len(s.marks) != 1 {
		t.Errorf("marking the clone changed the original's marks: %v", s.marks)
	}
	if got := c.here().Index; got != 3 {
		t.Errorf("clone at index %d, wanted 3", got)
	}
}
