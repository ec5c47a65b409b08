package display

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/penwyp/go-utc-face/internal/util"
)

// TerminalDisplay flushes frames of text rows to a terminal. Frames after
// the first are drawn over the previous one from the home position so the
// screen never flashes blank between ticks.
type TerminalDisplay struct {
	out               io.Writer
	inAlternateScreen bool
	isFirstRender     bool
	lastRows          int
	mu                sync.Mutex
}

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDisplay{
		out:           out,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if td.inAlternateScreen {
		return
	}
	td.write(
		util.EnterAltScreen,
		util.ClearScreen,
		util.MoveCursorHome,
		util.ClearScrollback,
		util.ResetScrollRegion,
		util.DisableScrollback,
		util.HideCursor,
	)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if !td.inAlternateScreen {
		return
	}
	td.write(
		util.ClearScreen,
		util.MoveCursorHome,
		util.EnableScrollback,
		util.ShowCursor,
		util.ExitAltScreen,
	)
	td.inAlternateScreen = false
}

// ClearScreen forces the next frame to start from a blank screen
func (td *TerminalDisplay) ClearScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	td.isFirstRender = true
}

// Render draws one frame. The first frame, and any frame whose row count
// differs from the previous one, clears the screen first.
func (td *TerminalDisplay) Render(lines []string) error {
	td.mu.Lock()
	defer td.mu.Unlock()

	w := bufio.NewWriter(td.out)
	if td.isFirstRender || len(lines) != td.lastRows {
		w.WriteString(util.ClearScreen)
		td.isFirstRender = false
	}
	w.WriteString(util.MoveCursorHome)

	for i, line := range lines {
		w.WriteString(line)
		w.WriteString(util.ClearLineFromCursor)
		if i < len(lines)-1 {
			w.WriteString("\r\n")
		}
	}
	w.WriteString(util.ClearToScreenEnd)
	td.lastRows = len(lines)

	return w.Flush()
}

func (td *TerminalDisplay) write(seqs ...string) {
	for _, s := range seqs {
		io.WriteString(td.out, s)
	}
}
