// Package shell implements the lumi shell's evaluator.
//
// The evaluator walks a parsed segment tree and composes child processes
// with pipes, sequencing, redirection, environment variable substitution
// and string interpolation. Evaluation is single threaded and within a
// pipe the right side only starts once the left has exited successfully,
// which is simpler than a POSIX pipeline and deliberately so.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/SirTony/lumi/ast"
	"github.com/SirTony/lumi/iostream"
	"github.com/SirTony/lumi/kernel"
)

// NotFoundError is returned when a command names neither a built-in nor an
// executable on PATH.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' is not a recognized command, script file, or executable program.", e.Name)
}

// Evaluator executes segment trees.
type Evaluator struct {
	builtins map[string]Builtin
	stream   iostream.IOStream
}

// New creates and returns a new Evaluator. Un-captured child output and
// inherited stdin go to the given stream.
func New(stream iostream.IOStream) *Evaluator {
	return &Evaluator{
		builtins: make(map[string]Builtin),
		stream:   stream,
	}
}

// Execute evaluates a segment. When capture is true a child's stdout and
// stderr are read into line lists instead of being inherited from the
// stream, input feeds the given lines (each followed by a newline) to the
// child's stdin.
//
// A non-zero exit code is not an error, it is reported through the Result
// so that sequencing and pipes can short-circuit on it. Errors are reserved
// for conditions that prevent evaluation entirely, unknown commands,
// missing variables and I/O failures.
func (e *Evaluator) Execute(seg ast.Segment, capture bool, input []string) (Result, error) {
	switch seg := seg.(type) {
	case ast.Empty:
		return Result{}, nil
	case ast.Text:
		return Result{Stdout: []string{seg.Text}}, nil
	case ast.CmdInterp:
		return e.Execute(seg.Inner, true, nil)
	case ast.StringInterp:
		return e.interpolate(seg)
	case ast.Var:
		return e.variable(seg, input)
	case ast.Seq:
		return e.sequence(seg, capture)
	case ast.Pipe:
		return e.pipe(seg, capture, input)
	case ast.Redirect:
		return e.redirect(seg, input)
	case ast.Command:
		return e.command(seg, capture, input)
	default:
		return Result{}, fmt.Errorf("unimplemented segment: %s", seg)
	}
}

// interpolate concatenates the captured stdout of each part into a single
// line, stopping at the first part that does not succeed.
func (e *Evaluator) interpolate(seg ast.StringInterp) (Result, error) {
	b := &strings.Builder{}
	for _, part := range seg.Parts {
		res, err := e.Execute(part, true, nil)
		if err != nil {
			return Result{}, err
		}
		if !res.Ok() {
			return res, nil
		}
		b.WriteString(strings.Join(res.Stdout, ""))
	}
	return Result{Stdout: []string{b.String()}}, nil
}

// variable reads the named environment variable, or assigns it when piped
// input is present. Assignment mutates the process-wide environment.
func (e *Evaluator) variable(seg ast.Var, input []string) (Result, error) {
	if input != nil {
		value := strings.Join(input, " ")
		if err := os.Setenv(seg.Name, value); err != nil {
			return Result{}, err
		}
		return Result{Stdout: []string{value}}, nil
	}

	value, ok := os.LookupEnv(seg.Name)
	if !ok {
		return Result{}, fmt.Errorf("variable '%s' not found", seg.Name)
	}
	if !utf8.ValidString(value) {
		return Result{}, fmt.Errorf("variable '%s' contains invalid data", seg.Name)
	}
	return Result{Stdout: []string{value}}, nil
}

// sequence runs left then right. When the sequence is safe the right side
// only runs if the left succeeded, otherwise the left result is discarded.
func (e *Evaluator) sequence(seg ast.Seq, capture bool) (Result, error) {
	left, err := e.Execute(seg.Left, capture, nil)
	if err != nil {
		return Result{}, err
	}
	if seg.Safe && !left.Ok() {
		return left, nil
	}
	return e.Execute(seg.Right, capture, nil)
}

// pipe captures the left side's stdout and feeds it to the right side's
// stdin. The right side never starts if the left did not succeed.
func (e *Evaluator) pipe(seg ast.Pipe, capture bool, input []string) (Result, error) {
	left, err := e.Execute(seg.Left, true, input)
	if err != nil {
		return Result{}, err
	}
	if !left.Ok() {
		return left, nil
	}
	return e.Execute(seg.Right, capture, left.Stdout)
}

// redirect connects a file to one of the left side's streams. The target
// segment evaluates to the file path, a multi-line target collapses into
// one path with no separator and will simply fail to open if a line break
// ends up embedded in it.
func (e *Evaluator) redirect(seg ast.Redirect, input []string) (Result, error) {
	target, err := e.Execute(seg.Right, true, nil)
	if err != nil {
		return Result{}, err
	}
	if !target.Ok() {
		return target, nil
	}
	path := strings.Join(target.Stdout, "")

	if seg.Mode == ast.RedirectStdIn {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Result{}, err
		}
		input = splitLines(string(contents))
	}

	left, err := e.Execute(seg.Left, true, input)
	if err != nil {
		return Result{}, err
	}

	if seg.Mode == ast.RedirectStdIn {
		return left, nil
	}

	var lines []string
	switch seg.Mode {
	case ast.RedirectStdOut:
		lines = left.Stdout
	case ast.RedirectStdErr:
		lines = left.Stderr
	default:
		lines = append(append([]string{}, left.Stdout...), left.Stderr...)
	}

	if err := writeLines(path, lines); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

// command resolves the program name, evaluates the argv, then either
// invokes a built-in or spawns a child process.
func (e *Evaluator) command(seg ast.Command, capture bool, input []string) (Result, error) {
	name, err := e.Execute(seg.Command, true, nil)
	if err != nil {
		return Result{}, err
	}
	if !name.Ok() {
		return name, nil
	}
	program := strings.Join(name.Stdout, "")

	var argv []string
	for _, arg := range seg.Args {
		res, err := e.Execute(arg, true, nil)
		if err != nil {
			return Result{}, err
		}
		argv = append(argv, res.Stdout...)
	}

	if builtin, ok := e.builtins[program]; ok {
		return builtin(append([]string{program}, argv...), input)
	}

	cmd := exec.Command(program, argv...)

	// Handing stdin over as a reader lets the exec runtime pump it from a
	// separate goroutine, so a child that fills its stdout pipe before
	// draining its stdin cannot deadlock us.
	if input != nil {
		cmd.Stdin = strings.NewReader(strings.Join(input, "\n") + "\n")
	} else {
		cmd.Stdin = e.stream.Stdin
	}

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = e.stream.Stdout
		cmd.Stderr = e.stream.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return Result{
				Code:   kernel.ExitCode(exit.ProcessState),
				Stdout: splitLines(stdout.String()),
				Stderr: splitLines(stderr.String()),
			}, nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return Result{}, &NotFoundError{Name: program}
		}
		return Result{}, err
	}

	return Result{
		Stdout: splitLines(stdout.String()),
		Stderr: splitLines(stderr.String()),
	}, nil
}

// splitLines applies the capture rule, split on LF, trim each line and
// drop the empties, nil when nothing remains.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// writeLines truncate-creates path and writes each line followed by LF,
// syncing before return so the data is durable.
func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return f.Sync()
}
