// ABOUTME: TTY detection and size queries for file descriptors via golang.org/x/term
// ABOUTME: Used before activating the screen to fail fast when output is not a terminal

package terminal

import (
	"fmt"

	"golang.org/x/term"

	"github.com/mauromedda/winframe/pkg/tui/geom"
)

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// FDSize returns the size of the terminal behind fd.
func FDSize(fd int) (geom.Size, error) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return geom.Size{}, fmt.Errorf("getting terminal size: %w", err)
	}
	return geom.Sz(rows, cols), nil
}
