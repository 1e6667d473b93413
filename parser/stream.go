package parser

import "github.com/SirTony/lumi/token"

// stream provides buffered lookahead over the lexer's token vector.
type stream struct {
	tokens []token.Token
	pos    int
}

func newStream(tokens []token.Token) *stream {
	return &stream{tokens: tokens}
}

// isEmpty reports whether every token has been consumed.
func (s *stream) isEmpty() bool {
	return s.pos >= len(s.tokens)
}

// peek returns the next token without consuming it.
func (s *stream) peek() (token.Token, bool) {
	return s.peekAhead(0)
}

// peekAhead returns the token distance places past the next one without
// consuming anything.
func (s *stream) peekAhead(distance int) (token.Token, bool) {
	if s.pos+distance >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[s.pos+distance], true
}

// matchA reports whether the next token is of the given kind, the payload
// is not inspected.
func (s *stream) matchA(kind token.Kind) bool {
	next, ok := s.peek()
	return ok && next.Is(kind)
}

// consume returns the next token, advancing past it.
func (s *stream) consume() (token.Token, error) {
	if s.isEmpty() {
		return token.Token{}, &Error{Kind: UnexpectedEOI}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// consumeA consumes the next token which must be of the given kind.
func (s *stream) consumeA(kind token.Kind) (token.Token, error) {
	tok, err := s.consume()
	if err != nil {
		return token.Token{}, err
	}
	if !tok.Is(kind) {
		return token.Token{}, &Error{
			Kind:   Unexpected,
			Expect: kind.String(),
			Found:  tok.String(),
			Span:   &tok.Span,
		}
	}
	return tok, nil
}
