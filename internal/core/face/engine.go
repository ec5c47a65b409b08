package face

import (
	"time"

	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
)

// Host is the engine's outbound surface
type Host interface {
	TickScheduler
	RequestRedraw()
}

// Options configures a new Engine
type Options struct {
	Zone      string // empty follows the clock source default
	Resources Resources
	Mode      model.DisplayMode
	Shape     model.Shape
	Period    time.Duration // interactive tick period, defaults to 50ms
}

// Engine is the inbound surface a host drives. All methods must be called
// from a single goroutine.
type Engine struct {
	clock     ClockSource
	host      Host
	scheduler *FrameScheduler
	styles    *StyleCache
	renderer  *DialRenderer

	zone    string
	pinned  string // zone given in Options, kept across visibility changes
	mode    model.DisplayMode
	shape   model.Shape
	visible bool
	card    model.Rect
	height  model.HeightAnimationState
	last    Frame
}

// NewEngine creates an invisible engine. Nothing is scheduled until the host
// reports the face visible.
func NewEngine(clock ClockSource, host Host, opts Options) *Engine {
	zone := opts.Zone
	if zone == "" {
		zone = clock.DefaultZone()
	}

	scheduler := NewFrameScheduler(host, opts.Period)
	scheduler.ambient = opts.Mode.Ambient

	return &Engine{
		clock:     clock,
		host:      host,
		scheduler: scheduler,
		styles:    NewStyleCache(opts.Resources),
		renderer:  NewDialRenderer(),
		zone:      zone,
		pinned:    opts.Zone,
		mode:      opts.Mode,
		shape:     opts.Shape,
	}
}

// OnTick handles a scheduled tick: redraw, then arm the next aligned tick.
// Ticks that arrive after the scheduler stopped are dropped.
func (e *Engine) OnTick() {
	if !e.scheduler.Running() {
		return
	}
	e.host.RequestRedraw()
	e.scheduler.OnTick(e.clock.Now())
}

// OnTimeTick handles the host's coarse once-a-minute tick used in ambient mode
func (e *Engine) OnTimeTick() {
	util.LogDebugf("Time tick: ambient = %v", e.mode.Ambient)
	e.host.RequestRedraw()
}

// OnVisibilityChanged starts or stops ticking. Becoming visible re-reads the
// default zone, which may have changed while hidden, unless the engine was
// created with an explicit zone.
func (e *Engine) OnVisibilityChanged(visible bool) {
	util.LogDebugf("Visibility changed: %v", visible)
	e.visible = visible
	if visible {
		if e.pinned == "" {
			e.zone = e.clock.DefaultZone()
		}
		e.host.RequestRedraw()
	}
	e.scheduler.SetVisible(visible)
}

// OnModeChanged applies a new display mode. Styles follow the mode through
// the style cache; the tick chain follows the ambient flag.
func (e *Engine) OnModeChanged(mode model.DisplayMode) {
	prev := e.mode
	if prev == mode {
		return
	}
	util.LogDebugf("Display mode changed: %s -> %s", prev, mode)
	e.mode = mode
	e.host.RequestRedraw()

	if prev.Interactive() != mode.Interactive() {
		e.scheduler.SetAmbient(!mode.Interactive())
	}
}

// OnPeekCardBoundsChanged records the peek card. Only a real change redraws.
func (e *Engine) OnPeekCardBoundsChanged(bounds model.Rect) {
	if bounds == e.card {
		return
	}
	util.LogDebugf("Peek card position: %+v", bounds)
	e.card = bounds
	e.host.RequestRedraw()
}

// OnShapeChanged switches between round and rectangular layouts
func (e *Engine) OnShapeChanged(round bool) {
	shape := model.ShapeRectangular
	if round {
		shape = model.ShapeRound
	}
	if shape == e.shape {
		return
	}
	util.LogDebugf("Display shape: %s", shape)
	e.shape = shape
	e.host.RequestRedraw()
}

// OnTimeZoneChanged switches the local zone, e.g. after the system zone moved
func (e *Engine) OnTimeZoneChanged(zone string) {
	if zone == e.zone {
		return
	}
	util.LogInfof("Time zone changed: %s -> %s", e.zone, zone)
	e.zone = zone
	if e.pinned != "" {
		e.pinned = zone
	}
	e.host.RequestRedraw()
}

// Draw renders one frame into c. The clock is sampled fresh and the height
// animation advances by exactly one step.
func (e *Engine) Draw(c Canvas, bounds model.Rect) {
	now := e.clock.Now()
	sample := SampleClock(e.clock, now, e.zone)

	desired := DesiredHeight(e.card, bounds.Height())
	e.height = AdvanceHeight(e.height, desired, now.UnixMilli(), e.mode.Ambient)

	frame := Frame{
		Bounds: bounds,
		Height: e.height.CurrentHeight,
		Sample: sample,
		Style:  e.styles.Get(e.mode, e.shape),
		Shape:  e.shape,
	}
	e.renderer.Render(c, frame)
	e.last = frame
}

// Animating reports whether the drawn height still differs from its target,
// so a host without a running tick chain knows to keep redrawing
func (e *Engine) Animating() bool {
	return e.height.Started && e.height.CurrentHeight != float64(e.height.TargetHeight)
}

func (e *Engine) Mode() model.DisplayMode { return e.mode }
func (e *Engine) Shape() model.Shape { return e.shape }
func (e *Engine) Visible() bool { return e.visible }
func (e *Engine) Zone() string { return e.zone }
func (e *Engine) PeekCard() model.Rect { return e.card }
func (e *Engine) Height() model.HeightAnimationState { return e.height }
func (e *Engine) LastFrame() Frame { return e.last }
func (e *Engine) Scheduler() *FrameScheduler { return e.scheduler }
