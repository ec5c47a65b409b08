package face

import (
	"math"
	"strconv"
	"testing"

	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	kind   string
	text   string
	x1, y1 float64
	x2, y2 float64
	paint  model.Paint
	color  model.Color
}

// recordingCanvas records draw calls. Every glyph is 8px wide and every
// string 10px tall.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawBackground(col model.Color) {
	c.calls = append(c.calls, drawCall{kind: "background", color: col})
}

func (c *recordingCanvas) DrawLine(x1, y1, x2, y2 float64, p model.Paint) {
	c.calls = append(c.calls, drawCall{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, paint: p})
}

func (c *recordingCanvas) DrawText(text string, x, y float64, p model.Paint) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, x1: x, y1: y, paint: p})
}

func (c *recordingCanvas) MeasureText(text string, _ model.Paint) float64 {
	return float64(len(text)) * 8
}

func (c *recordingCanvas) TextHeight(string, model.Paint) float64 {
	return 10
}

func (c *recordingCanvas) texts() map[string]drawCall {
	out := make(map[string]drawCall)
	for _, call := range c.calls {
		if call.kind == "text" {
			out[call.text] = call
		}
	}
	return out
}

func testFrame(mode model.DisplayMode, shape model.Shape) Frame {
	return Frame{
		Bounds: model.Rect{Right: 400, Bottom: 400},
		Height: 400,
		Sample: model.ClockSample{
			LocalHour:   14,
			LocalMinute: 30,
			HourFloat:   14.5,
			OffsetHours: -5.5,
			GMTHour:     20,
			Zone:        "America/St_Johns",
		},
		Style: ResolveStyle(mode, shape, DefaultResources()),
		Shape: shape,
	}
}

func TestFrame_CenterAndRadius(t *testing.T) {
	f := Frame{Bounds: model.Rect{Left: 10, Top: 20, Right: 410, Bottom: 420}, Height: 300}

	cx, cy := f.Center()
	assert.Equal(t, 210.0, cx)
	assert.Equal(t, 170.0, cy)
	assert.Equal(t, 150.0, f.Radius())

	tiny := Frame{Bounds: model.Rect{Right: 400, Bottom: 400}, Height: 0}
	assert.Equal(t, 1.0, tiny.Radius())
}

func TestDialRenderer_DrawOrder(t *testing.T) {
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, testFrame(model.DisplayMode{}, model.ShapeRectangular))

	require.Len(t, c.calls, 1+2+24+1)
	assert.Equal(t, "background", c.calls[0].kind)
	assert.Equal(t, "line", c.calls[1].kind)
	assert.Equal(t, "line", c.calls[2].kind)
	for i := 0; i < 24; i++ {
		assert.Equal(t, strconv.Itoa(i), c.calls[3+i].text)
	}
	assert.Equal(t, "UTC-5.5", c.calls[27].text)
}

func TestDialRenderer_Arms(t *testing.T) {
	f := testFrame(model.DisplayMode{}, model.ShapeRectangular)
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, f)

	minute := c.calls[1]
	assert.Equal(t, f.Style.CurrentHour, minute.paint, "minute arm uses the current hour paint")
	assert.Equal(t, 200.0, minute.x1)
	assert.Equal(t, 200.0, minute.y1)
	assert.InDelta(t, 200.0, minute.x2, 1e-9)
	assert.InDelta(t, 330.0, minute.y2, 1e-9, "30 minutes points straight down")

	hour := c.calls[2]
	assert.Equal(t, f.Style.Hand, hour.paint)
	angle := 14.5 * math.Pi / 6
	assert.InDelta(t, 200+math.Sin(angle)*65, hour.x2, 1e-9)
	assert.InDelta(t, 200-math.Cos(angle)*65, hour.y2, 1e-9)
}

func TestDialRenderer_HourLabels(t *testing.T) {
	f := testFrame(model.DisplayMode{}, model.ShapeRectangular)
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, f)
	texts := c.texts()

	local := texts["14"]
	assert.Equal(t, f.Style.BigHour.TextSize, local.paint.TextSize)
	assert.Equal(t, f.Style.LocalHighlight, local.paint.Color)

	gmt := texts["20"]
	assert.Equal(t, f.Style.BigHour.TextSize, gmt.paint.TextSize)
	assert.Equal(t, f.Style.GMTHighlight, gmt.paint.Color)

	plain := texts["7"]
	assert.Equal(t, f.Style.Hour, plain.paint)

	// 3 o'clock on the outer ring, 15 on the inner ring, both vertically centered
	three := texts["3"]
	assert.InDelta(t, 380.0, three.x1, 1e-9)
	assert.InDelta(t, 205.0, three.y1, 1e-9)
	fifteen := texts["15"]
	assert.InDelta(t, 350.0, fifteen.x1, 1e-9)
	assert.InDelta(t, 205.0, fifteen.y1, 1e-9)

	zero := texts["0"]
	assert.InDelta(t, 200.0, zero.x1, 1e-9)
	assert.InDelta(t, 25.0, zero.y1, 1e-9)
}

func TestDialRenderer_UTCLabelPlacement(t *testing.T) {
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, testFrame(model.DisplayMode{}, model.ShapeRectangular))

	label := c.texts()["UTC-5.5"]
	assert.Equal(t, 400.0-7*8-20, label.x1)
	assert.Equal(t, 30.0, label.y1)
	assert.Equal(t, model.AlignLeft, label.paint.Align)

	c = &recordingCanvas{}
	NewDialRenderer().Render(c, testFrame(model.DisplayMode{}, model.ShapeRound))

	label = c.texts()["UTC-5.5"]
	assert.Equal(t, 200.0, label.x1)
	assert.Equal(t, 200.0, label.y1)
	assert.Equal(t, model.AlignCenter, label.paint.Align)
}

func TestDialRenderer_PeekCardCompressesDial(t *testing.T) {
	f := testFrame(model.DisplayMode{}, model.ShapeRectangular)
	f.Height = 200
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, f)

	minute := c.calls[1]
	assert.Equal(t, 100.0, minute.y1)
	assert.InDelta(t, 100.0+(100-10-10-50), minute.y2, 1e-9)
}

func TestDialRenderer_AmbientColors(t *testing.T) {
	f := testFrame(model.DisplayMode{Ambient: true, LowBitAmbient: true}, model.ShapeRectangular)
	c := &recordingCanvas{}
	NewDialRenderer().Render(c, f)

	ambient := DefaultResources().Colors.Ambient
	assert.Equal(t, ambient, c.calls[1].paint.Color)
	assert.Equal(t, ambient, c.calls[2].paint.Color)
	assert.Equal(t, ambient, c.texts()["14"].paint.Color)
	assert.Equal(t, ambient, c.texts()["20"].paint.Color)
	assert.False(t, c.calls[1].paint.AntiAlias)
}
