// Package ast defines the lumi shell's segment tree, the parsed form of a
// line of shell source that the evaluator walks.
package ast

import (
	"fmt"
	"strings"
)

// SegmentType identifies the variant of a segment tree node.
type SegmentType int

// Type returns itself and allows easy embedding into segment nodes
// to enable e.g. Pipe.Type().
func (t SegmentType) Type() SegmentType {
	return t
}

const (
	SegmentEmpty        SegmentType = iota // Blank input, evaluates to exit 0.
	SegmentText                            // A literal string.
	SegmentStringInterp                    // A quoted string with embedded sub-expressions.
	SegmentCmdInterp                       // A $(...) command substitution.
	SegmentVar                             // An environment variable get or set.
	SegmentCommand                         // An external or built-in command invocation.
	SegmentPipe                            // Left's stdout feeding right's stdin.
	SegmentSeq                             // Sequential or conditional sequencing.
	SegmentRedirect                        // A stream connected to a file.
)

// Segment is a node in the parsed command tree.
type Segment interface {
	Type() SegmentType
	String() string
}

// RedirectMode selects which of the left segment's streams a redirection
// connects to the file.
type RedirectMode int

const (
	RedirectStdIn   RedirectMode = iota // file -> stdin
	RedirectStdOut                      // stdout -> file
	RedirectStdErr                      // stderr -> file
	RedirectStdBoth                     // stdout and stderr -> file
)

func (m RedirectMode) String() string {
	switch m {
	case RedirectStdIn:
		return "<"
	case RedirectStdOut:
		return ">"
	case RedirectStdErr:
		return ">>"
	default:
		return ">>>"
	}
}

// Empty is the segment produced for blank input.
type Empty struct {
	SegmentType
}

func (e Empty) String() string {
	return ""
}

// Text is a literal string, it yields itself on stdout.
type Text struct {
	Text string
	SegmentType
}

func (t Text) String() string {
	return t.Text
}

// StringInterp is a quoted string containing at least one brace-delimited
// sub-expression, its value is the concatenation of its parts.
type StringInterp struct {
	Parts []Segment
	SegmentType
}

func (s StringInterp) String() string {
	b := &strings.Builder{}
	b.WriteString(`"`)
	for _, part := range s.Parts {
		if part.Type() == SegmentText {
			b.WriteString(part.String())
		} else {
			fmt.Fprintf(b, "{ %s }", part)
		}
	}
	b.WriteString(`"`)
	return b.String()
}

// CmdInterp is a $(...) command substitution, the inner segment is
// evaluated with capture on and its stdout becomes the value.
type CmdInterp struct {
	Inner Segment
	SegmentType
}

func (c CmdInterp) String() string {
	return fmt.Sprintf("$( %s )", c.Inner)
}

// Var gets an environment variable, or sets it when evaluated with piped
// input.
type Var struct {
	Name string
	SegmentType
}

func (v Var) String() string {
	return "$" + v.Name
}

// Command is an external or built-in command invocation. Command is a leaf
// that evaluates to the program name, Args is nil when no arguments were
// given.
type Command struct {
	Command Segment
	Args    []Segment
	SegmentType
}

func (c Command) String() string {
	parts := []string{c.Command.String()}
	for _, arg := range c.Args {
		parts = append(parts, arg.String())
	}
	return strings.Join(parts, " ")
}

// Pipe feeds the left segment's stdout to the right segment's stdin.
type Pipe struct {
	Left  Segment
	Right Segment
	SegmentType
}

func (p Pipe) String() string {
	return fmt.Sprintf("%s | %s", p.Left, p.Right)
}

// Seq runs left then right. When Safe, right only runs if left exited 0.
type Seq struct {
	Left  Segment
	Right Segment
	Safe  bool
	SegmentType
}

func (s Seq) String() string {
	op := ";"
	if s.Safe {
		op = "&"
	}
	return fmt.Sprintf("%s %s %s", s.Left, op, s.Right)
}

// Redirect connects one of the left segment's streams to the file named by
// the right segment.
type Redirect struct {
	Left  Segment
	Right Segment
	Mode  RedirectMode
	SegmentType
}

func (r Redirect) String() string {
	return fmt.Sprintf("%s %s %s", r.Left, r.Mode, r.Right)
}
