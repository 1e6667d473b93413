package app

import (
	"fmt"
	"os"

	"github.com/SirTony/lumi/kernel"
	"github.com/SirTony/lumi/shell"
	"github.com/fatih/color"
	"github.com/juju/ansiterm/tabwriter"
)

// registerBuiltins wires up the commands implemented inside the shell
// itself. Built-ins shadow executables of the same name on PATH.
func (a *App) registerBuiltins() {
	a.eval.Register("cd", a.cd)
	a.eval.Register("clear", a.clear)
	a.eval.Register("exit", a.exit)
	a.eval.Register("help", a.help)
}

// cd changes the working directory, with no argument it goes home.
func (a *App) cd(argv []string, input []string) (shell.Result, error) {
	var dir string
	if len(argv) > 1 {
		dir = argv[1]
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return shell.Result{}, err
		}
		dir = home
	}

	if err := os.Chdir(dir); err != nil {
		return shell.Result{}, err
	}
	return shell.Result{}, nil
}

// clear wipes the terminal.
func (a *App) clear(argv []string, input []string) (shell.Result, error) {
	kernel.ClearScreen(a.stdout)
	return shell.Result{}, nil
}

// exit ends the session once the current line finishes evaluating.
func (a *App) exit(argv []string, input []string) (shell.Result, error) {
	a.quit = true
	return shell.Result{}, nil
}

// help shows the built-in commands in an aligned table.
func (a *App) help(argv []string, input []string) (shell.Result, error) {
	descriptions := map[string]string{
		"cd":    "Change the working directory, home when no argument is given",
		"clear": "Clear the screen",
		"exit":  "Leave the shell",
		"help":  "Show this table",
	}

	writer := tabwriter.NewWriter(a.stdout, 0, 8, 1, '\t', tabwriter.AlignRight)
	titleStyle := color.New(color.FgHiWhite, color.Bold)
	nameStyle := color.New(color.FgHiCyan, color.Bold)

	titleStyle.Fprintln(writer, "Name\tDescription")
	for _, name := range a.eval.Builtins() {
		fmt.Fprintf(writer, "%s\t%s\n", nameStyle.Sprint(name), descriptions[name])
	}

	if err := writer.Flush(); err != nil {
		return shell.Result{}, err
	}
	return shell.Result{}, nil
}
