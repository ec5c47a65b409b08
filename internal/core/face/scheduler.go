package face

import (
	"time"

	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/util"
)

// TickScheduler arms and cancels the host's single pending tick.
// CancelTick must be safe to call when nothing is armed.
type TickScheduler interface {
	ScheduleTick(delay time.Duration)
	CancelTick()
}

// FrameScheduler keeps interactive redraw ticks flowing while the face is
// visible and interactive, and keeps them stopped otherwise
type FrameScheduler struct {
	ticks   TickScheduler
	period  time.Duration
	visible bool
	ambient bool
	running bool
}

// NewFrameScheduler creates a stopped scheduler. A non-positive period falls
// back to the interactive update period.
func NewFrameScheduler(ticks TickScheduler, period time.Duration) *FrameScheduler {
	if period <= 0 {
		period = constants.InteractiveUpdatePeriod
	}
	return &FrameScheduler{
		ticks:  ticks,
		period: period,
	}
}

// ShouldRun reports whether ticks belong in the current visibility and mode
func (s *FrameScheduler) ShouldRun() bool {
	return s.visible && !s.ambient
}

// Running reports whether a tick chain is currently armed
func (s *FrameScheduler) Running() bool {
	return s.running
}

// Period returns the interactive tick period
func (s *FrameScheduler) Period() time.Duration {
	return s.period
}

// SetVisible records visibility and reconciles the tick chain
func (s *FrameScheduler) SetVisible(visible bool) {
	s.visible = visible
	s.Reconcile()
}

// SetAmbient records the display mode and reconciles the tick chain
func (s *FrameScheduler) SetAmbient(ambient bool) {
	s.ambient = ambient
	s.Reconcile()
}

// Reconcile brings the tick chain in line with ShouldRun. Starting (or
// restarting) cancels whatever is pending and arms an immediate tick;
// stopping cancels; staying stopped does nothing.
func (s *FrameScheduler) Reconcile() {
	if !s.ShouldRun() {
		s.Stop()
		return
	}

	if s.running {
		s.ticks.CancelTick()
	} else {
		util.LogDebugf("Frame scheduler started (period %s)", s.period)
	}
	s.running = true
	s.ticks.ScheduleTick(0)
}

// Stop cancels the tick chain. Calling it while stopped is a no-op.
func (s *FrameScheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.ticks.CancelTick()
	util.LogDebug("Frame scheduler stopped")
}

// NextDelay returns the delay that lands the next tick on a period boundary
func (s *FrameScheduler) NextDelay(nowMs int64) time.Duration {
	periodMs := s.period.Milliseconds()
	if periodMs <= 0 {
		return s.period
	}
	rem := nowMs % periodMs
	if rem < 0 {
		rem += periodMs
	}
	return time.Duration(periodMs-rem) * time.Millisecond
}

// OnTick arms the next tick after one was delivered. It returns false, and
// arms nothing, when the scheduler is stopped.
func (s *FrameScheduler) OnTick(now time.Time) bool {
	if !s.running {
		return false
	}
	s.ticks.ScheduleTick(s.NextDelay(now.UnixMilli()))
	return true
}
