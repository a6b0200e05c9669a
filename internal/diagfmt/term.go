package diagfmt

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal,
// matching the teacher's own cmd/surge isTerminal helper — used to decide
// Options.Color's default without the caller needing to know about
// golang.org/x/term directly.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
