// Package kernel wraps the small set of platform concerns the shell needs,
// console clearing, interrupt handling, exit status normalisation and
// terminal colour depth detection. Everything OS specific lives behind the
// build-tagged files in this package so the rest of lumi is portable.
package kernel

import (
	"fmt"
	"io"
	"os"
	"os/signal"
)

// ColorSupport is a terminal's colour depth.
type ColorSupport int

const (
	// None means the terminal does not support colour, also used when
	// stdout is not a TTY.
	None ColorSupport = iota

	// Default means basic 8/16 colour support.
	Default

	// Colors256 means the terminal supports 256 colours.
	Colors256

	// TrueColor means full 24-bit RGB support.
	TrueColor
)

// ClearScreen wipes the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}

// DisableCtrlC installs a handler that ignores the interactive interrupt
// so a ctrl-c aimed at a child process does not kill the shell itself.
func DisableCtrlC() {
	signal.Ignore(os.Interrupt)
}
