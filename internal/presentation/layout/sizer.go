package layout

import (
	"os"

	"github.com/penwyp/go-utc-face/internal/util"
	"golang.org/x/term"
)

// Fallback grid used when stdout is not a terminal
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{fd: int(os.Stdout.Fd())}

type Sizer struct {
	fd int
}

// NewSizer returns a sizer for the terminal behind fd
func NewSizer(fd int) *Sizer {
	return &Sizer{fd: fd}
}

// TerminalSize returns the usable grid in cells. The last row is left free
// so that writing the bottom line never scrolls the screen.
func (i Sizer) TerminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(i.fd)
	if err != nil || cols < 1 || rows < 2 {
		util.LogDebugf("terminal size unavailable, using %dx%d", DefaultCols, DefaultRows)
		return DefaultCols, DefaultRows - 1
	}
	return cols, rows - 1
}

// TerminalSize returns the grid of the terminal behind stdout
func TerminalSize() (cols, rows int) {
	return sharedSizer.TerminalSize()
}
