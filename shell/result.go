package shell

// Result holds the outcome of evaluating a segment.
//
// Code is the exit code. A child killed by a signal reports the signal
// number where the platform can say which one, and -1 when the exit status
// could not be determined at all. A child process's Stdout and Stderr are
// only populated when the evaluation captured them, while text, variables,
// interpolations and command substitutions always report their value on
// Stdout. A nil slice means the stream either went to the console or
// produced nothing.
type Result struct {
	Stdout []string
	Stderr []string
	Code   int
}

// Ok reports whether the result was successful.
func (r Result) Ok() bool {
	return r.Code == 0
}
