//go:build windows

package kernel

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// ExitCode normalises a child's exit status, Windows has no notion of
// signals so an indeterminable status is reported as -1.
func ExitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	return state.ExitCode()
}

// GetColorSupport reports TrueColor on any console that has (or accepts)
// virtual terminal processing, modern Windows terminals handle 24-bit
// colour once VT sequences are enabled.
func GetColorSupport() ColorSupport {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) {
		return None
	}

	handle := windows.Handle(fd)
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return None
	}

	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0 {
		if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			return Default
		}
	}

	return TrueColor
}
