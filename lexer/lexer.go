// Package lexer implements the lumi shell's lexer.
//
// The lexer walks a rune scanner over a line of shell source and classifies
// what it finds into tokens. Quoted strings may contain brace delimited
// sub-expressions which are lexed by forking the scanner and recursing, so
// the output is a tree of tokens rather than a flat list.
package lexer

import (
	"strings"
	"unicode"

	"github.com/SirTony/lumi/token"
)

// special holds the characters that cannot appear in an unquoted word.
const special = "$;&|<>\"'`(){}"

// punct maps literal punctuation to token kinds. Matching is greedy so the
// entries must stay sorted by length in descending order.
var punct = []struct {
	lit  string
	kind token.Kind
}{
	{">>>", token.StdBoth},
	{">>", token.StdErr},
	{">", token.StdOut},
	{"<", token.StdIn},
	{"$", token.Dollar},
	{";", token.Semi},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"(", token.LParen},
	{")", token.RParen},
}

// mode selects how the lexer treats a top-level '}'.
type mode int

const (
	// normal lexes to the end of the input.
	normal mode = iota

	// interp stops at a top-level '}' without consuming it, the '}' is the
	// terminator taken by the enclosing quoted-string lexer.
	interp
)

// Lexer turns a line of shell source into a vector of tokens.
type Lexer struct {
	scan *scanner
	mode mode
}

// New returns a Lexer over the given source text.
func New(source string) *Lexer {
	return &Lexer{scan: newScanner(source), mode: normal}
}

// Tokenize consumes the whole input and returns the tokens it produced.
// The returned slice always ends with a single zero-length EndOfInput.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for !l.scan.isEmpty() {
		l.scan.skipWhile(unicode.IsSpace)
		if l.scan.isEmpty() {
			break
		}

		c, _ := l.scan.peek()
		if l.mode == interp && c == '}' {
			break
		}

		tok, ok, err := l.next(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			l.scan.pushMark()
			span, _ := l.scan.popSpan()
			return nil, &Error{Kind: UnexpectedChar, Char: c, Span: span}
		}
		tokens = append(tokens, tok)
	}

	l.scan.pushMark()
	span, _ := l.scan.popSpan()
	tokens = append(tokens, token.Token{Kind: token.EndOfInput, Span: span})

	return tokens, nil
}

// next tries each tokenizer in order against the current character, quoted
// strings first, then punctuation, then unquoted words.
func (l *Lexer) next(c rune) (token.Token, bool, error) {
	if isQuote(c) {
		tok, err := l.lexQuoted(c)
		return tok, true, err
	}
	if tok, ok := l.lexPunct(); ok {
		return tok, true, nil
	}
	if tok, ok := l.lexUnquoted(c); ok {
		return tok, true, nil
	}
	return token.Token{}, false, nil
}

// lexPunct matches the punctuation table against the unread input.
func (l *Lexer) lexPunct() (token.Token, bool) {
	l.scan.pushMark()
	for _, p := range punct {
		if l.scan.takeIfNext(p.lit) {
			span, _ := l.scan.popSpan()
			return token.Token{Kind: p.kind, Span: span}, true
		}
	}
	l.scan.popMark()
	return token.Token{}, false
}

// lexUnquoted lexes the longest run of word characters into a single
// String token.
func (l *Lexer) lexUnquoted(c rune) (token.Token, bool) {
	if !isWord(c) {
		return token.Token{}, false
	}
	l.scan.pushMark()
	s := l.scan.takeWhile(isWord)
	span, _ := l.scan.popSpan()
	return token.Token{Kind: token.String, Value: s, Span: span}, true
}

// lexQuoted lexes a quoted string, the opener (one of " ' `) is also the
// closer. A backslash followed by the opener escapes it, any other
// backslash is kept literally and the character after it is taken
// verbatim. A '{' opens a sub-expression which is tokenized by a forked
// lexer in interp mode, whose position the outer lexer then adopts.
func (l *Lexer) lexQuoted(opener rune) (token.Token, error) {
	l.scan.pushMark() // Spans the whole quoted string
	l.scan.consume()  // The opener

	var (
		sub []token.Token   // Tokens collected from text runs and interpolations
		buf strings.Builder // Text accumulated since the last flush
	)

	l.scan.pushMark() // Spans the current text run

	for {
		c, ok := l.scan.peek()
		if !ok || c == opener {
			break
		}

		switch c {
		case '\\':
			if next, ok := l.scan.peekAhead(1); ok && next == opener {
				l.scan.consume() // Drop the backslash
			} else {
				l.scan.consume()
				buf.WriteRune(c) // Keep the backslash itself
			}
			if escaped, ok := l.scan.consume(); ok {
				buf.WriteRune(escaped)
			}

		case '{':
			if buf.Len() > 0 {
				span, _ := l.scan.popSpan()
				sub = append(sub, token.Token{Kind: token.String, Value: buf.String(), Span: span})
				buf.Reset()
			} else {
				l.scan.popMark()
			}

			inner := &Lexer{scan: l.scan.clone(), mode: interp}
			inner.scan.pushMark()
			inner.scan.consume() // The '{'

			children, err := inner.Tokenize()
			if err != nil {
				return token.Token{}, err
			}

			if closer, ok := inner.scan.consume(); !ok || closer != '}' {
				span, _ := inner.scan.popSpan()
				return token.Token{}, &Error{
					Kind:   UnexpectedEOI,
					Reason: "string interpolation does not terminate",
					Span:   span,
				}
			}

			span, _ := inner.scan.popSpan()
			sub = append(sub, token.Token{Kind: token.Interp, Children: children, Span: span})

			l.scan = inner.scan // Adopt the sub-scanner's position
			l.scan.pushMark()   // Start of the next text run

		default:
			l.scan.consume()
			buf.WriteRune(c)
		}
	}

	textSpan, _ := l.scan.popSpan() // Span of the trailing text run

	if closer, ok := l.scan.consume(); !ok || closer != opener {
		l.scan.popMark() // Discard the whole-string mark
		return token.Token{}, &Error{
			Kind:   UnexpectedEOI,
			Reason: "string does not terminate",
			Span:   textSpan,
		}
	}

	if len(sub) > 0 {
		if buf.Len() > 0 {
			sub = append(sub, token.Token{Kind: token.String, Value: buf.String(), Span: textSpan})
		}
		span, _ := l.scan.popSpan()
		return token.Token{Kind: token.Interp, Children: sub, Span: span}, nil
	}

	span, _ := l.scan.popSpan()
	return token.Token{Kind: token.String, Value: buf.String(), Span: span}, nil
}

// isQuote reports whether c opens (and closes) a quoted string.
func isQuote(c rune) bool {
	return c == '"' || c == '\'' || c == '`'
}

// isWord reports whether c may appear in an unquoted word.
func isWord(c rune) bool {
	return !unicode.IsSpace(c) && !unicode.IsControl(c) && !strings.ContainsRune(special, c)
}
