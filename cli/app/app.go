// Package app implements the CLI functionality, the CLI defers execution
// to the exported methods in this package. The REPL loop, the prompt, the
// caret diagnostics and the built-in commands all live here and hand the
// actual language work to the lexer, parser and shell packages.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"sort"
	"strings"

	"github.com/FollowTheProcess/msg"
	"github.com/SirTony/lumi/config"
	"github.com/SirTony/lumi/iostream"
	"github.com/SirTony/lumi/kernel"
	"github.com/SirTony/lumi/lexer"
	"github.com/SirTony/lumi/logger"
	"github.com/SirTony/lumi/parser"
	"github.com/SirTony/lumi/shell"
	"github.com/fatih/color"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/term"
)

// App represents the lumi program.
type App struct {
	stdout  io.Writer        // Where to write to
	stderr  io.Writer        // Where to write errors to
	stdin   io.Reader        // Where lines (and inherited child stdin) come from
	Options *Options         // All the CLI options
	logger  logger.Logger    // Prints debug messages to stderr if --verbose is used
	printer msg.Printer      // Prints user messages to stdout
	config  config.Config    // Resolved prompt and colour settings
	eval    *shell.Evaluator // Evaluates parsed segments
	quit    bool             // Set by the exit built-in to end the REPL
}

// Options holds all the flag options for lumi, these will be at their zero
// values if the flags were not set and the value of the flag otherwise.
type Options struct {
	Command string // The --command flag
	Prompt  string // The --prompt flag
	NoColor bool   // The --no-color flag
	NoClear bool   // The --no-clear flag
	Verbose bool   // The --verbose flag
}

// New creates and returns a new App.
func New(stdout, stderr io.Writer, stdin io.Reader) *App {
	options := &Options{}
	printer := msg.Default()
	printer.Stdout = stdout
	printer.Stderr = stderr
	return &App{
		stdout:  stdout,
		stderr:  stderr,
		stdin:   stdin,
		Options: options,
		printer: printer,
	}
}

// Run is the entry point to the lumi program. With --command it evaluates
// a single line and returns, otherwise it enters the REPL until the exit
// built-in or end of input.
func (a *App) Run() error {
	if err := a.setup(); err != nil {
		return err
	}
	// Flush the logger
	defer a.logger.Sync() // nolint: errcheck

	if a.Options.Command != "" {
		a.runLine(a.Options.Command)
		return nil
	}

	return a.repl()
}

// setup performs one time initialisation, the logger, the configuration
// and the evaluator with its built-in table.
func (a *App) setup() error {
	log, err := logger.NewZapLogger(a.Options.Verbose)
	if err != nil {
		return err
	}
	a.logger = log

	a.config = config.Load()
	if a.Options.NoColor {
		a.config.ColorsEnabled = false
	}
	if a.Options.Prompt != "" {
		style, ok := config.ParsePromptStyle(a.Options.Prompt)
		if !ok {
			return fmt.Errorf("unknown prompt style %q, expected one of lumi, linux or windows", a.Options.Prompt)
		}
		a.config.Prompt = style
	}
	color.NoColor = !a.config.ColorsEnabled

	a.eval = shell.New(iostream.IOStream{
		Stdin:  a.stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	a.registerBuiltins()

	a.logger.Debug("Prompt style: %v, colors enabled: %v", a.config.Prompt, a.config.ColorsEnabled)
	return nil
}

// repl reads, evaluates and prints until the session ends.
func (a *App) repl() error {
	kernel.DisableCtrlC()
	if !a.Options.NoClear {
		kernel.ClearScreen(a.stdout)
	}
	a.printer.Textf("Welcome to lumi! Type 'help' to list the built-in commands.")

	input := bufio.NewScanner(a.stdin)
	for !a.quit {
		a.printPrompt()
		if !input.Scan() {
			break
		}

		line := input.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(a.stdout)
			continue
		}

		a.runLine(line)
	}

	fmt.Fprintln(a.stdout)
	return input.Err()
}

// runLine lexes, parses and evaluates a single line. Diagnostics are
// rendered rather than returned so one bad line never ends the session.
func (a *App) runLine(line string) {
	tokens, err := lexer.New(line).Tokenize()
	if err != nil {
		a.showSyntaxError(err, line)
		return
	}

	seg, err := parser.New(tokens).ParseAll()
	if err != nil {
		a.showSyntaxError(err, line)
		return
	}

	a.logger.Debug("Evaluating: %s", seg)
	if _, err := a.eval.Execute(seg, false, nil); err != nil {
		a.showRunError(err)
	}
}

// showSyntaxError prints a lex or parse error and, when the error carries
// a span, a caret under the offending position.
func (a *App) showSyntaxError(err error, line string) {
	a.errorText(err.Error())

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		a.pointTo(line, lexErr.Span.Start.Index)
		return
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) && parseErr.Span != nil {
		a.pointTo(line, parseErr.Span.Start.Index)
	}
}

// showRunError prints an evaluation error, an unknown command also gets a
// "did you mean" built-in suggestion when one ranks closely enough.
func (a *App) showRunError(err error) {
	a.errorText(err.Error())

	var notFound *shell.NotFoundError
	if errors.As(err, &notFound) {
		if closest := a.closestBuiltin(notFound.Name); closest != "" {
			a.printer.Textf("Did you mean %q?", closest)
		}
	}
}

func (a *App) errorText(s string) {
	fmt.Fprintln(a.stderr, a.config.Colors.Error.Sprint(s))
}

// closestBuiltin returns the registered built-in closest to name, or an
// empty string when nothing ranks.
func (a *App) closestBuiltin(name string) string {
	matches := fuzzy.RankFindNormalizedFold(name, a.eval.Builtins())
	if len(matches) == 0 {
		return ""
	}
	sort.Sort(matches)
	return matches[0].Target
}

// pointTo draws a red caret under position at, trimming the echoed line to
// the terminal width when it would not fit.
func (a *App) pointTo(line string, at int) {
	const (
		pad    = 10
		prefix = "... "
		suffix = " ..."
	)

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	runes := []rune(line)
	section := line
	trimmed := at > pad && len(runes) > width
	if trimmed {
		section = prefix + string(runes[at-pad:])
	}

	if sec := []rune(section); len(sec) > width {
		section = string(sec[:width-len(suffix)]) + suffix
	}

	caret := at
	if trimmed {
		caret = pad + len(prefix)
	}

	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, section)
	fmt.Fprintln(a.stderr, a.config.Colors.Error.Sprint(strings.Repeat(" ", caret)+"^"))
	fmt.Fprintln(a.stderr, a.config.Colors.Error.Sprint(strings.Repeat("─", caret)+"┘"))
}

// printPrompt draws the prompt for the configured style.
func (a *App) printPrompt() {
	dir := a.currentDir(a.config.Prompt != config.Windows)

	switch a.config.Prompt {
	case config.Windows:
		fmt.Fprintf(a.stdout, "%s> ", a.config.Colors.Dir.Sprint(dir))
	case config.Linux:
		fmt.Fprintf(a.stdout, "%s@%s:%s$ ",
			a.config.Colors.User.Sprint(username()),
			a.config.Colors.Machine.Sprint(hostname()),
			a.config.Colors.Dir.Sprint(dir))
	default:
		fmt.Fprintf(a.stdout, "$ %s@%s> ",
			a.config.Colors.User.Sprint(username()),
			a.config.Colors.Dir.Sprint(dir))
	}
}

// currentDir returns the working directory, with $HOME contracted to ~
// when tilde is true.
func (a *App) currentDir(tilde bool) string {
	cwd, err := os.Getwd()
	if err != nil {
		return "?"
	}
	if !tilde {
		return cwd
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(cwd, home) {
		return "~" + strings.TrimPrefix(cwd, home)
	}
	return cwd
}

func username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "localhost"
}
