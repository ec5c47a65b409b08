package watchface

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// loopHost is the engine's host inside the orchestrator loop. Timers fire
// on clock goroutines and post their generation to ticks; the loop only
// honours the generation that is still current, so a tick that raced with
// CancelTick or a newer ScheduleTick is dropped.
type loopHost struct {
	clock clockwork.Clock
	ticks chan uint64

	mu     sync.Mutex
	timer  clockwork.Timer
	gen    uint64
	armed  bool
	redraw bool
}

func newLoopHost(clock clockwork.Clock) *loopHost {
	return &loopHost{
		clock: clock,
		ticks: make(chan uint64, 4),
	}
}

// ScheduleTick replaces any pending tick with one firing after delay
func (h *loopHost) ScheduleTick(delay time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
	}
	h.gen++
	gen := h.gen
	h.armed = true
	h.timer = h.clock.AfterFunc(delay, func() {
		select {
		case h.ticks <- gen:
		default:
		}
	})
}

// CancelTick drops the pending tick, if any
func (h *loopHost) CancelTick() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.gen++
	h.armed = false
}

// RequestRedraw marks the face dirty
func (h *loopHost) RequestRedraw() {
	h.mu.Lock()
	h.redraw = true
	h.mu.Unlock()
}

// Ticks delivers fired tick generations
func (h *loopHost) Ticks() <-chan uint64 {
	return h.ticks
}

// claim reports whether gen is the armed tick and disarms it
func (h *loopHost) claim(gen uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.armed || gen != h.gen {
		return false
	}
	h.armed = false
	h.timer = nil
	return true
}

// takeRedraw returns and clears the dirty flag
func (h *loopHost) takeRedraw() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	dirty := h.redraw
	h.redraw = false
	return dirty
}

// pending reports whether a tick is armed
func (h *loopHost) pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.armed
}
