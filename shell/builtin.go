package shell

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Builtin is a command implemented inside the shell itself rather than
// spawned as a child process. argv carries the resolved program name at
// index 0 followed by the evaluated arguments, input carries any piped
// stdin lines.
type Builtin func(argv []string, input []string) (Result, error)

// Register makes a built-in available under the given name. Built-ins are
// looked up by the evaluated program name before any process is spawned,
// so a registered name shadows an executable on PATH.
func (e *Evaluator) Register(name string, fn Builtin) {
	e.builtins[name] = fn
}

// Builtins returns the names of every registered built-in in sorted order.
func (e *Evaluator) Builtins() []string {
	names := maps.Keys(e.builtins)
	sort.Strings(names)
	return names
}
