package canvas

import (
	"github.com/penwyp/go-utc-face/internal/core/model"
)

// Painter is the drawing half of a canvas, enough to replay a display list
type Painter interface {
	DrawBackground(c model.Color)
	DrawLine(x1, y1, x2, y2 float64, p model.Paint)
	DrawText(text string, x, y float64, p model.Paint)
}

// Metrics is the measuring half of a canvas
type Metrics interface {
	MeasureText(text string, p model.Paint) float64
	TextHeight(text string, p model.Paint) float64
}

type displayOp interface {
	execute(p Painter)
}

type opBackground struct {
	color model.Color
}

func (o opBackground) execute(p Painter) { p.DrawBackground(o.color) }

type opLine struct {
	x1, y1, x2, y2 float64
	paint          model.Paint
}

func (o opLine) execute(p Painter) { p.DrawLine(o.x1, o.y1, o.x2, o.y2, o.paint) }

type opText struct {
	text  string
	x, y  float64
	paint model.Paint
}

func (o opText) execute(p Painter) { p.DrawText(o.text, o.x, o.y, o.paint) }

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Painter.
type DisplayList struct {
	ops    []displayOp
	bounds model.Rect
}

// Replay paints the recorded operations in order
func (d *DisplayList) Replay(p Painter) {
	for _, op := range d.ops {
		op.execute(p)
	}
}

// Len returns the number of recorded operations
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Bounds returns the bounds the list was recorded with
func (d *DisplayList) Bounds() model.Rect {
	return d.bounds
}

// Recorder is a canvas that records drawing calls into a display list and
// answers measurements from its Metrics
type Recorder struct {
	metrics   Metrics
	ops       []displayOp
	bounds    model.Rect
	recording bool
}

func NewRecorder(metrics Metrics) *Recorder {
	return &Recorder{metrics: metrics}
}

// Begin starts a new recording, discarding anything unfinished
func (r *Recorder) Begin(bounds model.Rect) {
	r.ops = r.ops[:0]
	r.bounds = bounds
	r.recording = true
}

// End finishes the recording and returns a display list
func (r *Recorder) End() *DisplayList {
	if !r.recording {
		return &DisplayList{bounds: r.bounds}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, bounds: r.bounds}
}

func (r *Recorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

func (r *Recorder) DrawBackground(c model.Color) {
	r.append(opBackground{color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, p model.Paint) {
	r.append(opLine{x1: x1, y1: y1, x2: x2, y2: y2, paint: p})
}

func (r *Recorder) DrawText(text string, x, y float64, p model.Paint) {
	r.append(opText{text: text, x: x, y: y, paint: p})
}

func (r *Recorder) MeasureText(text string, p model.Paint) float64 {
	return r.metrics.MeasureText(text, p)
}

func (r *Recorder) TextHeight(text string, p model.Paint) float64 {
	return r.metrics.TextHeight(text, p)
}
