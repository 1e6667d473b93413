// Package iostream provides convenient wrappers around the standard process
// streams and enables lumi to talk to a variety of readers and writers.
package iostream

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// IOStream is an object containing the streams a shell evaluation talks to
// when it is not capturing.
type IOStream struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OS returns an IOStream configured to talk to the OS streams.
func OS() IOStream {
	return IOStream{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Test returns an IOStream configured to talk to temporary buffers
// that can then be read from to verify output.
func Test() IOStream {
	return IOStream{
		Stdin:  &bytes.Buffer{},
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}
}

// Null returns an IOStream that provides no input and discards all output.
func Null() IOStream {
	return IOStream{
		Stdin:  strings.NewReader(""),
		Stdout: io.Discard,
		Stderr: io.Discard,
	}
}
