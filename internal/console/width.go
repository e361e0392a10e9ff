// Package console holds the small amount of terminal plumbing the tools need.
package console

import (
	"os"

	"golang.org/x/term"
)

// MinWidth is the floor applied to the detected terminal width.
const MinWidth = 80

// Width returns the width of the terminal attached to f, never less than MinWidth.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return MinWidth
	}
	return Floor(w)
}

// Floor applies MinWidth to an already known width.
func Floor(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
