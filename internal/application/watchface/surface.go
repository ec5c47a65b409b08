package watchface

import (
	"os"
	"os/signal"

	"github.com/penwyp/go-utc-face/internal/core/face"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/presentation/canvas"
	"github.com/penwyp/go-utc-face/internal/presentation/display"
	"github.com/penwyp/go-utc-face/internal/presentation/layout"
	"golang.org/x/sys/unix"
)

// Surface is where the orchestrator draws frames
type Surface interface {
	// Begin starts a frame and returns its canvas and bounds
	Begin() (face.Canvas, model.Rect)
	// Present shows the frame drawn since Begin
	Present() error
	// Invalidated fires when the surface lost its content, e.g. on resize
	Invalidated() <-chan struct{}
}

// TerminalSurface draws frames as character cells on the terminal
type TerminalSurface struct {
	display *display.TerminalDisplay
	size    func() (cols, rows int)
	cells   *canvas.Cells
	resize  chan os.Signal
	invalid chan struct{}
	stop    chan struct{}
}

// NewTerminalSurface creates a surface sized to the terminal. Window size
// changes (SIGWINCH) invalidate it.
func NewTerminalSurface(d *display.TerminalDisplay) *TerminalSurface {
	s := newTerminalSurface(d, layout.TerminalSize)
	signal.Notify(s.resize, unix.SIGWINCH)
	go s.forwardResize()
	return s
}

func newTerminalSurface(d *display.TerminalDisplay, size func() (int, int)) *TerminalSurface {
	return &TerminalSurface{
		display: d,
		size:    size,
		resize:  make(chan os.Signal, 1),
		invalid: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
}

func (s *TerminalSurface) forwardResize() {
	for {
		select {
		case <-s.resize:
			select {
			case s.invalid <- struct{}{}:
			default:
			}
		case <-s.stop:
			return
		}
	}
}

func (s *TerminalSurface) Begin() (face.Canvas, model.Rect) {
	cols, rows := s.size()
	if s.cells == nil || s.cells.Cols() != cols || s.cells.Rows() != rows {
		s.cells = canvas.NewCells(cols, rows)
	}
	return s.cells, s.cells.Bounds()
}

func (s *TerminalSurface) Present() error {
	if s.cells == nil {
		return nil
	}
	return s.display.Render(s.cells.Lines())
}

func (s *TerminalSurface) Invalidated() <-chan struct{} {
	return s.invalid
}

// Clear forces the next frame onto a blank screen
func (s *TerminalSurface) Clear() {
	s.display.ClearScreen()
}

// Close stops listening for resizes
func (s *TerminalSurface) Close() {
	signal.Stop(s.resize)
	close(s.stop)
}

// Publisher receives finished display lists, e.g. a window
type Publisher interface {
	Bounds() model.Rect
	Publish(list *canvas.DisplayList)
}

// RecorderSurface records frames into display lists for a Publisher that
// paints them on its own goroutine
type RecorderSurface struct {
	target   Publisher
	recorder *canvas.Recorder
}

func NewRecorderSurface(target Publisher) (*RecorderSurface, error) {
	fonts, err := canvas.NewFontCache()
	if err != nil {
		return nil, err
	}
	return &RecorderSurface{
		target:   target,
		recorder: canvas.NewRecorder(canvas.NewFontMetrics(fonts)),
	}, nil
}

func (s *RecorderSurface) Begin() (face.Canvas, model.Rect) {
	bounds := s.target.Bounds()
	s.recorder.Begin(bounds)
	return s.recorder, bounds
}

func (s *RecorderSurface) Present() error {
	s.target.Publish(s.recorder.End())
	return nil
}

func (s *RecorderSurface) Invalidated() <-chan struct{} {
	return nil
}
