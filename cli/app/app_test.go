package app_test

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/SirTony/lumi/cli/app"
)

func skipIfWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix userland")
	}
}

func newApp(stdin string) (*app.App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := app.New(stdout, stderr, strings.NewReader(stdin))
	a.Options.NoColor = true
	a.Options.NoClear = true
	return a, stdout, stderr
}

func TestRunSingleCommand(t *testing.T) {
	skipIfWindows(t)

	a, stdout, _ := newApp("")
	a.Options.Command = "echo hello"

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Errorf("stdout %q does not contain %q", stdout.String(), "hello")
	}
}

func TestRunLexErrorShowsCaret(t *testing.T) {
	a, _, stderr := newApp("")
	a.Options.Command = `"oops`

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}

	out := stderr.String()
	if !strings.Contains(out, "string does not terminate") {
		t.Errorf("stderr %q does not mention the unterminated string", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("stderr %q has no caret", out)
	}
}

func TestRunParseErrorShowsPosition(t *testing.T) {
	a, _, stderr := newApp("")
	a.Options.Command = "| oops"

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !strings.Contains(stderr.String(), "expecting shell segment") {
		t.Errorf("stderr %q does not mention the parse error", stderr.String())
	}
	if !strings.Contains(stderr.String(), "at position 0") {
		t.Errorf("stderr %q does not give the position of the parse error", stderr.String())
	}
}

func TestRunUnknownCommandSuggestsBuiltin(t *testing.T) {
	a, stdout, stderr := newApp("")
	a.Options.Command = "clea"

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !strings.Contains(stderr.String(), "is not a recognized command") {
		t.Errorf("stderr %q does not mention the unknown command", stderr.String())
	}
	if !strings.Contains(stdout.String(), `"clear"`) {
		t.Errorf("stdout %q does not suggest the clear built-in", stdout.String())
	}
}

func TestRunBadPromptStyle(t *testing.T) {
	a, _, _ := newApp("")
	a.Options.Prompt = "zsh"

	if err := a.Run(); err == nil {
		t.Fatal("Run did not return an error for an unknown prompt style")
	}
}

func TestReplRunsUntilExit(t *testing.T) {
	skipIfWindows(t)

	a, stdout, _ := newApp("echo from-the-repl\nexit\n")

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if !strings.Contains(stdout.String(), "from-the-repl") {
		t.Errorf("stdout %q does not contain the echoed line", stdout.String())
	}
}

func TestReplEndsAtEOF(t *testing.T) {
	skipIfWindows(t)

	a, _, _ := newApp("echo hi\n")

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
}

func TestReplHelpListsBuiltins(t *testing.T) {
	a, stdout, _ := newApp("help\nexit\n")

	if err := a.Run(); err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}

	out := stdout.String()
	for _, name := range []string{"cd", "clear", "exit", "help"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output %q does not list %q", out, name)
		}
	}
}
