package tui

import (
	"io"

	"regtools/internal/envvars"
)

// Print writes the tables once, for the non-interactive list mode.
func Print(w io.Writer, snap envvars.Snapshot, termWidth int, st Styles) error {
	_, err := io.WriteString(w, RenderSnapshot(snap, termWidth, st))
	return err
}
