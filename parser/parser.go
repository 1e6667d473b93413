// Package parser implements the lumi shell's parser.
//
// The grammar's operator set is small and closed, so the parser is a
// hand-written Pratt parser: parse consumes one token to form the left
// operand, then climbs for as long as the next operator binds tighter than
// the minimum precedence it was called with. A single parseCommands flag
// flips the parser between command position, where a bare string starts a
// command invocation and absorbs the atoms after it as arguments, and
// argument position, where a bare string is just text.
package parser

import (
	"github.com/SirTony/lumi/ast"
	"github.com/SirTony/lumi/token"
)

// precedence is the binding power of an operator, operators at the same
// level are left-associative because parse recurses at the operator's own
// precedence.
type precedence int

const (
	invalid precedence = iota
	seq
	pipe
	redir
	cmd
)

// precedenceOf returns the binding power of the operator tk begins.
func precedenceOf(tk token.Token) precedence {
	switch tk.Kind {
	case token.Amp, token.Semi:
		return seq
	case token.Pipe:
		return pipe
	case token.StdIn, token.StdOut, token.StdErr, token.StdBoth:
		return redir
	default:
		return invalid
	}
}

// Parser turns a vector of lexed tokens into a segment tree.
type Parser struct {
	tokens        *stream
	parseCommands bool
}

// New creates and returns a new Parser over the given tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens:        newStream(tokens),
		parseCommands: true,
	}
}

// ParseAll parses the whole token stream into a single segment, blank
// input yields Empty. Anything left over after parsing (other than the
// terminating EndOfInput) is an error.
func (p *Parser) ParseAll() (ast.Segment, error) {
	if next, ok := p.tokens.peek(); !ok || next.Is(token.EndOfInput) {
		return ast.Empty{SegmentType: ast.SegmentEmpty}, nil
	}

	tree, err := p.parse(invalid)
	if err != nil {
		return nil, err
	}

	if _, err := p.tokens.consumeA(token.EndOfInput); err != nil {
		return nil, err
	}

	return tree, nil
}

// parse forms a left operand from the next token then climbs while the
// following operator binds tighter than min.
func (p *Parser) parse(min precedence) (ast.Segment, error) {
	tk, err := p.tokens.consume()
	if err != nil {
		return nil, err
	}

	var left ast.Segment
	switch tk.Kind {
	case token.String:
		left, err = p.parseString(tk.Value)
	case token.Interp:
		left, err = p.parseInterp(tk.Children)
	case token.Dollar:
		left, err = p.parseDollar()
	default:
		return nil, &Error{Kind: ExpectSegment, Found: tk.String(), Span: &tk.Span}
	}
	if err != nil {
		return nil, err
	}

	for {
		next, ok := p.tokens.peek()
		if !ok || min >= precedenceOf(next) {
			break
		}

		op, err := p.tokens.consume()
		if err != nil {
			return nil, err
		}

		switch op.Kind {
		case token.Amp, token.Semi:
			right, err := p.parse(seq)
			if err != nil {
				return nil, err
			}
			left = ast.Seq{
				Safe:        op.Is(token.Amp),
				Left:        left,
				Right:       right,
				SegmentType: ast.SegmentSeq,
			}
		case token.Pipe:
			right, err := p.parse(pipe)
			if err != nil {
				return nil, err
			}
			left = ast.Pipe{Left: left, Right: right, SegmentType: ast.SegmentPipe}
		default:
			left, err = p.parseRedirect(left, op)
			if err != nil {
				return nil, err
			}
		}
	}

	return left, nil
}

// parseDollar parses the two forms a '$' can begin, $(expr) command
// substitution and $NAME variable access.
func (p *Parser) parseDollar() (ast.Segment, error) {
	if p.tokens.matchA(token.LParen) {
		if _, err := p.tokens.consumeA(token.LParen); err != nil {
			return nil, err
		}

		inner, err := p.withCommands(func() (ast.Segment, error) { return p.parse(invalid) })
		if err != nil {
			return nil, err
		}

		if _, err := p.tokens.consumeA(token.RParen); err != nil {
			return nil, err
		}

		return ast.CmdInterp{Inner: inner, SegmentType: ast.SegmentCmdInterp}, nil
	}

	name, err := p.tokens.consumeA(token.String)
	if err != nil {
		return nil, err
	}

	return ast.Var{Name: name.Value, SegmentType: ast.SegmentVar}, nil
}

// parseString parses a lexed string, in command position it becomes the
// head of a command invocation.
func (p *Parser) parseString(s string) (ast.Segment, error) {
	seg := ast.Text{Text: s, SegmentType: ast.SegmentText}
	if !p.parseCommands {
		return seg, nil
	}
	return p.parseArgs(seg)
}

// parseInterp maps an Interp token's children onto segments, text runs
// become Text and each sub-expression is re-parsed through a fresh parser.
func (p *Parser) parseInterp(children []token.Token) (ast.Segment, error) {
	parts := make([]ast.Segment, 0, len(children))
	for _, child := range children {
		switch child.Kind {
		case token.String:
			parts = append(parts, ast.Text{Text: child.Value, SegmentType: ast.SegmentText})
		case token.Interp:
			inner, err := New(child.Children).ParseAll()
			if err != nil {
				return nil, err
			}
			parts = append(parts, inner)
		default:
			return nil, &Error{
				Kind:   Unexpected,
				Expect: "string or string interpolation",
				Found:  child.String(),
				Span:   &child.Span,
			}
		}
	}

	seg := ast.StringInterp{Parts: parts, SegmentType: ast.SegmentStringInterp}
	if !p.parseCommands {
		return seg, nil
	}
	return p.parseArgs(seg)
}

// parseArgs collects the argument atoms following a command head.
func (p *Parser) parseArgs(head ast.Segment) (ast.Segment, error) {
	var args []ast.Segment
	for p.hasSegment() {
		arg, err := p.withoutCommands(func() (ast.Segment, error) { return p.parse(cmd) })
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ast.Command{Command: head, Args: args, SegmentType: ast.SegmentCommand}, nil
}

// parseRedirect parses the target of a redirection operator, which must be
// a string or string interpolation.
func (p *Parser) parseRedirect(left ast.Segment, op token.Token) (ast.Segment, error) {
	span := op.Span
	if next, ok := p.tokens.peek(); ok {
		span = next.Span
	}

	right, err := p.withoutCommands(func() (ast.Segment, error) { return p.parse(redir) })
	if err != nil {
		return nil, err
	}

	switch right.(type) {
	case ast.Text, ast.StringInterp:
	default:
		return nil, &Error{Kind: ExpectString, Span: &span}
	}

	var mode ast.RedirectMode
	switch op.Kind {
	case token.StdIn:
		mode = ast.RedirectStdIn
	case token.StdOut:
		mode = ast.RedirectStdOut
	case token.StdErr:
		mode = ast.RedirectStdErr
	default:
		mode = ast.RedirectStdBoth
	}

	return ast.Redirect{Left: left, Right: right, Mode: mode, SegmentType: ast.SegmentRedirect}, nil
}

// hasSegment reports whether the next token can begin an argument atom.
func (p *Parser) hasSegment() bool {
	next, ok := p.tokens.peek()
	if !ok {
		return false
	}
	return next.Is(token.String) || next.Is(token.Interp) || next.Is(token.Dollar)
}

// withCommands runs f with the parser in command position, restoring the
// previous position after.
func (p *Parser) withCommands(f func() (ast.Segment, error)) (ast.Segment, error) {
	orig := p.parseCommands
	p.parseCommands = true
	defer func() { p.parseCommands = orig }()
	return f()
}

// withoutCommands runs f with the parser in argument position, restoring
// the previous position after.
func (p *Parser) withoutCommands(f func() (ast.Segment, error)) (ast.Segment, error) {
	orig := p.parseCommands
	p.parseCommands = false
	defer func() { p.parseCommands = orig }()
	return f()
}
