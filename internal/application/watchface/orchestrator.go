package watchface

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/penwyp/go-utc-face/internal/core/face"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/presentation/interaction"
	"github.com/penwyp/go-utc-face/internal/util"
)

// Orchestrator drives one engine: it owns the tick timers, translates key
// presses and watched files into engine events, and draws dirty frames
// onto a surface. Everything touching the engine runs on the Run goroutine.
type Orchestrator struct {
	config  *FaceConfig
	clock   clockwork.Clock
	time    *util.TimeProvider
	host    *loopHost
	engine  *face.Engine
	surface Surface
	watcher *FileWatcher

	bounds model.Rect
	peek   bool
}

// NewOrchestrator creates a new Orchestrator instance. A nil clock uses the
// real clock.
func NewOrchestrator(config *FaceConfig, surface Surface, clock clockwork.Clock) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	tp, err := util.NewTimeProvider(clock, config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}

	res, err := LoadResources(config.ResourcesFile)
	if err != nil {
		return nil, err
	}

	host := newLoopHost(clock)
	engine := face.NewEngine(tp, host, face.Options{
		Resources: res,
		Mode:      config.Mode(),
		Shape:     config.Shape(),
		Period:    config.UpdatePeriod,
	})

	return &Orchestrator{
		config:  config,
		clock:   clock,
		time:    tp,
		host:    host,
		engine:  engine,
		surface: surface,
	}, nil
}

// Engine exposes the driven engine
func (o *Orchestrator) Engine() *face.Engine {
	return o.engine
}

// Run shows the face and processes events until ctx is done or a quit key
// arrives on keys. A nil keys channel disables keyboard control.
func (o *Orchestrator) Run(ctx context.Context, keys <-chan interaction.KeyEvent) error {
	util.LogInfof("Starting face: zone=%s mode=%s shape=%s", o.engine.Zone(), o.engine.Mode(), o.engine.Shape())
	defer o.Close()

	o.startWatcher()

	visible := true
	if o.config.EventsFile != "" {
		state, err := LoadHostState(ctx, o.config.EventsFile)
		if err != nil {
			util.LogWarnf("Ignoring host state: %v", err)
		} else if state != nil {
			o.applyHostState(state)
			if state.Visible != nil {
				visible = *state.Visible
			}
		}
	}
	o.engine.OnVisibilityChanged(visible)

	ambientTicker := o.clock.NewTicker(o.config.AmbientTickInterval)
	defer ambientTicker.Stop()

	var watchEvents <-chan WatchEvent
	if o.watcher != nil {
		watchEvents = o.watcher.Events()
	}

	o.draw()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down face...")
			return nil

		case gen := <-o.host.Ticks():
			if o.host.claim(gen) {
				o.engine.OnTick()
			}

		case <-ambientTicker.Chan():
			if o.engine.Mode().Ambient {
				o.engine.OnTimeTick()
			}

		case event := <-watchEvents:
			o.handleWatchEvent(ctx, event)

		case <-o.surface.Invalidated():
			if c, ok := o.surface.(interface{ Clear() }); ok {
				c.Clear()
			}
			o.host.RequestRedraw()

		case key := <-keys:
			if o.handleKeyboard(key) {
				return nil
			}
		}

		if o.host.takeRedraw() || (o.engine.Animating() && !o.host.pending()) {
			o.draw()
		}
	}
}

// Close stops the tick chain and file watching
func (o *Orchestrator) Close() {
	o.host.CancelTick()
	if o.watcher != nil {
		o.watcher.Close()
		o.watcher = nil
	}
}

func (o *Orchestrator) startWatcher() {
	targets := make(map[string]WatchKind)
	if o.config.EventsFile != "" {
		targets[o.config.EventsFile] = WatchHostState
	}
	if o.config.WatchTimezone {
		targets[o.config.TimezoneFile] = WatchTimezone
	}
	if len(targets) == 0 {
		return
	}

	watcher, err := NewFileWatcher(targets)
	if err != nil {
		util.LogWarnf("File watching disabled: %v", err)
		return
	}
	o.watcher = watcher
}

func (o *Orchestrator) handleWatchEvent(ctx context.Context, event WatchEvent) {
	util.LogDebugf("Watched file changed: %s %s (%s)", event.Kind, event.Path, event.Operation)

	switch event.Kind {
	case WatchHostState:
		state, err := LoadHostState(ctx, o.config.EventsFile)
		if err != nil {
			util.LogWarnf("Ignoring host state: %v", err)
			return
		}
		if state != nil {
			o.applyHostState(state)
		}

	case WatchTimezone:
		changed, err := o.time.ReloadLocal(o.config.TimezoneFile)
		if err != nil {
			util.LogWarnf("Failed to reload system timezone: %v", err)
			return
		}
		if changed {
			util.LogInfof("System timezone changed")
			o.host.RequestRedraw()
		}
		o.engine.OnTimeZoneChanged(o.time.DefaultZone())
	}
}

// applyHostState forwards every field present in state to the engine.
// Visibility goes last so the first visible frame already has the new mode.
func (o *Orchestrator) applyHostState(state *HostState) {
	if state.Round != nil {
		o.engine.OnShapeChanged(*state.Round)
	}

	mode := o.engine.Mode()
	if state.Ambient != nil {
		mode.Ambient = *state.Ambient
	}
	if state.LowBitAmbient != nil {
		mode.LowBitAmbient = *state.LowBitAmbient
	}
	if state.Muted != nil {
		mode.Muted = *state.Muted
	}
	o.engine.OnModeChanged(mode)

	if state.PeekCard != nil {
		o.peek = !state.PeekCard.IsEmpty()
		o.engine.OnPeekCardBoundsChanged(*state.PeekCard)
	}

	if state.Visible != nil && *state.Visible != o.engine.Visible() {
		o.engine.OnVisibilityChanged(*state.Visible)
	}
}

// handleKeyboard handles keyboard events and reports whether to quit
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	if event.Type == interaction.KeyEscape {
		return true
	}

	mode := o.engine.Mode()
	switch event.Key {
	case 'q', 'Q', interaction.KeyCtrlC:
		return true
	case 'a', 'A':
		mode.Ambient = !mode.Ambient
		o.engine.OnModeChanged(mode)
	case 'l', 'L':
		mode.LowBitAmbient = !mode.LowBitAmbient
		o.engine.OnModeChanged(mode)
	case 'm', 'M':
		mode.Muted = !mode.Muted
		o.engine.OnModeChanged(mode)
	case 'p', 'P':
		o.peek = !o.peek
		card := model.Rect{}
		if o.peek {
			card = peekCardFor(o.bounds)
		}
		o.engine.OnPeekCardBoundsChanged(card)
	case 'v', 'V':
		o.engine.OnVisibilityChanged(!o.engine.Visible())
	case 's', 'S':
		o.engine.OnShapeChanged(o.engine.Shape() != model.ShapeRound)
	}
	return false
}

// peekCardFor returns a card covering the bottom third of bounds
func peekCardFor(bounds model.Rect) model.Rect {
	return model.Rect{
		Left:   bounds.Left,
		Top:    bounds.Top + bounds.Height()*2/3,
		Right:  bounds.Right,
		Bottom: bounds.Bottom,
	}
}

// draw renders one frame. A hidden face presents a blank frame. A panic
// while drawing loses only that frame.
func (o *Orchestrator) draw() {
	defer func() {
		if r := recover(); r != nil {
			util.LogErrorf("Frame failed: %v", r)
		}
	}()

	c, bounds := o.surface.Begin()
	o.bounds = bounds
	if o.engine.Visible() {
		o.engine.Draw(c, bounds)
	} else {
		c.DrawBackground(model.Color{A: 0xff})
	}
	if err := o.surface.Present(); err != nil {
		util.LogErrorf("Failed to present frame: %v", err)
	}
}
