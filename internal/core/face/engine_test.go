package face

import (
	"testing"
	"time"

	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost records scheduler calls and redraw requests
type fakeHost struct {
	fakeTicks
	redraws int
}

func (h *fakeHost) RequestRedraw() {
	h.redraws++
}

func (h *fakeHost) clear() {
	h.calls = nil
	h.redraws = 0
}

var engineStart = time.Date(2024, 3, 1, 18, 0, 0, 20*int(time.Millisecond), time.UTC)

func newTestEngine(t *testing.T, opts Options) (*Engine, *fakeHost) {
	t.Helper()
	tp, _ := newTestClock(t, engineStart, "America/St_Johns")
	host := &fakeHost{}
	if opts.Resources == (Resources{}) {
		opts.Resources = DefaultResources()
	}
	return NewEngine(tp, host, opts), host
}

var displayBounds = model.Rect{Right: 400, Bottom: 400}

func TestNewEngine(t *testing.T) {
	e, host := newTestEngine(t, Options{})

	assert.Equal(t, "America/St_Johns", e.Zone())
	assert.False(t, e.Visible())
	assert.False(t, e.Scheduler().Running())
	assert.Empty(t, host.calls)
	assert.Zero(t, host.redraws)

	e, _ = newTestEngine(t, Options{Zone: "Asia/Kolkata", Shape: model.ShapeRound})
	assert.Equal(t, "Asia/Kolkata", e.Zone())
	assert.Equal(t, model.ShapeRound, e.Shape())
}

func TestEngine_VisibilityDrivesTicks(t *testing.T) {
	e, host := newTestEngine(t, Options{})

	e.OnVisibilityChanged(true)
	assert.True(t, e.Visible())
	assert.Equal(t, []string{"schedule 0s"}, host.calls)
	assert.Equal(t, 1, host.redraws)
	host.clear()

	e.OnTick()
	assert.Equal(t, 1, host.redraws)
	assert.Equal(t, []string{"schedule 30ms"}, host.calls, "next tick lands on a 50ms boundary")
	host.clear()

	e.OnVisibilityChanged(false)
	assert.Equal(t, []string{"cancel"}, host.calls)
	host.clear()

	e.OnTick()
	assert.Empty(t, host.calls, "stale tick after stop is ignored")
	assert.Zero(t, host.redraws)
}

func TestEngine_VisibleReloadsDefaultZone(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	e.OnTimeZoneChanged("Asia/Kolkata")
	assert.Equal(t, "Asia/Kolkata", e.Zone())

	e.OnVisibilityChanged(true)
	assert.Equal(t, "America/St_Johns", e.Zone())
}

func TestEngine_VisibleKeepsExplicitZone(t *testing.T) {
	e, _ := newTestEngine(t, Options{Zone: "Asia/Kolkata"})

	e.OnVisibilityChanged(true)
	assert.Equal(t, "Asia/Kolkata", e.Zone())

	e.OnVisibilityChanged(false)
	e.OnTimeZoneChanged("Asia/Kathmandu")
	e.OnVisibilityChanged(true)
	assert.Equal(t, "Asia/Kathmandu", e.Zone())
}

func TestEngine_ModeChanges(t *testing.T) {
	e, host := newTestEngine(t, Options{})
	e.OnVisibilityChanged(true)
	host.clear()

	e.OnModeChanged(model.DisplayMode{})
	assert.Empty(t, host.calls)
	assert.Zero(t, host.redraws, "unchanged mode does nothing")

	e.OnModeChanged(model.DisplayMode{Muted: true})
	assert.Empty(t, host.calls, "mute does not touch the tick chain")
	assert.Equal(t, 1, host.redraws)
	host.clear()

	e.OnModeChanged(model.DisplayMode{Muted: true, Ambient: true})
	assert.Equal(t, []string{"cancel"}, host.calls)
	assert.False(t, e.Scheduler().Running())
	host.clear()

	e.OnTimeTick()
	assert.Equal(t, 1, host.redraws)
	assert.Empty(t, host.calls)
	host.clear()

	e.OnModeChanged(model.DisplayMode{})
	assert.Equal(t, []string{"schedule 0s"}, host.calls)
	assert.True(t, e.Scheduler().Running())
}

func TestEngine_AmbientStartStaysStopped(t *testing.T) {
	e, host := newTestEngine(t, Options{Mode: model.DisplayMode{Ambient: true}})

	e.OnVisibilityChanged(true)
	assert.Empty(t, host.calls)
	assert.False(t, e.Scheduler().Running())
}

func TestEngine_ChangeOnlyInvalidation(t *testing.T) {
	e, host := newTestEngine(t, Options{})
	card := model.Rect{Top: 300, Right: 400, Bottom: 400}

	e.OnPeekCardBoundsChanged(card)
	e.OnPeekCardBoundsChanged(card)
	assert.Equal(t, 1, host.redraws)
	assert.Equal(t, card, e.PeekCard())
	host.clear()

	e.OnShapeChanged(false)
	assert.Zero(t, host.redraws)
	e.OnShapeChanged(true)
	assert.Equal(t, 1, host.redraws)
	assert.Equal(t, model.ShapeRound, e.Shape())
	host.clear()

	e.OnTimeZoneChanged("America/St_Johns")
	assert.Zero(t, host.redraws)
	e.OnTimeZoneChanged("UTC")
	assert.Equal(t, 1, host.redraws)
}

func TestEngine_DrawFrame(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	c := &recordingCanvas{}

	e.Draw(c, displayBounds)

	frame := e.LastFrame()
	assert.Equal(t, 14, frame.Sample.LocalHour)
	assert.Equal(t, 30, frame.Sample.LocalMinute)
	assert.Equal(t, 18, frame.Sample.GMTHour)
	assert.Equal(t, 400.0, frame.Height)
	assert.Equal(t, displayBounds, frame.Bounds)

	texts := c.texts()
	require.Contains(t, texts, "UTC-3.5")
	assert.Equal(t, frame.Style.LocalHighlight, texts["14"].paint.Color)
	assert.Equal(t, frame.Style.GMTHighlight, texts["18"].paint.Color)
}

func TestEngine_DrawAnimatesTowardPeekCard(t *testing.T) {
	tp, fc := newTestClock(t, engineStart, "UTC")
	host := &fakeHost{}
	e := NewEngine(tp, host, Options{Resources: DefaultResources()})
	c := &recordingCanvas{}

	e.Draw(c, displayBounds)
	assert.Equal(t, 400.0, e.Height().CurrentHeight)
	assert.False(t, e.Animating())

	e.OnPeekCardBoundsChanged(model.Rect{Top: 300, Right: 400, Bottom: 400})
	fc.Advance(50 * time.Millisecond)
	e.Draw(c, displayBounds)
	assert.Equal(t, 400.0, e.Height().CurrentHeight, "debounced")
	assert.True(t, e.Animating())

	fc.Advance(200 * time.Millisecond)
	e.Draw(c, displayBounds)
	assert.Less(t, e.Height().CurrentHeight, 400.0)

	for i := 0; i < 40; i++ {
		fc.Advance(50 * time.Millisecond)
		e.Draw(c, displayBounds)
	}
	assert.Equal(t, 300.0, e.Height().CurrentHeight)
	assert.False(t, e.Animating())
	assert.Equal(t, 300.0, e.LastFrame().Height)
}

func TestEngine_AmbientSnapsHeight(t *testing.T) {
	e, _ := newTestEngine(t, Options{Mode: model.DisplayMode{Ambient: true}})
	c := &recordingCanvas{}

	e.Draw(c, displayBounds)
	e.OnPeekCardBoundsChanged(model.Rect{Top: 250, Right: 400, Bottom: 400})
	e.Draw(c, displayBounds)

	assert.Equal(t, 250.0, e.Height().CurrentHeight)
}
