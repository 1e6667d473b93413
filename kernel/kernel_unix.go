//go:build !windows

package kernel

import (
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
)

// ExitCode normalises a child's exit status, on unix a child killed by a
// signal reports the signal number as its code.
func ExitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return int(status.Signal())
	}
	return state.ExitCode()
}

// GetColorSupport detects the terminal's colour depth from the COLORTERM
// and TERM conventions.
func GetColorSupport() ColorSupport {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return None
	}

	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return TrueColor
	}

	if strings.Contains(os.Getenv("TERM"), "256color") {
		return Colors256
	}

	return Default
}
