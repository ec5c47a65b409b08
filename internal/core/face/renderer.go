package face

import (
	"math"
	"strconv"

	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/core/model"
)

// armReferenceText sizes the arms so they clear the widest two-digit label
const armReferenceText = "24"

// Frame is everything the renderer needs for one redraw
type Frame struct {
	Bounds model.Rect // full drawing area
	Height float64    // animated height, replaces Bounds.Height for layout
	Sample model.ClockSample
	Style  StyleSet
	Shape  model.Shape
}

// Center returns the dial center. The vertical center follows the animated
// height so the dial compresses above a peek card.
func (f Frame) Center() (x, y float64) {
	return float64(f.Bounds.Left) + float64(f.Bounds.Width())/2,
		float64(f.Bounds.Top) + ClampDimension(f.Height)/2
}

// Radius returns the dial radius
func (f Frame) Radius() float64 {
	cx, cy := f.Center()
	return ClampDimension(math.Min(cx-float64(f.Bounds.Left), cy-float64(f.Bounds.Top)))
}

// DialRenderer issues the draw calls for a frame
type DialRenderer struct{}

func NewDialRenderer() *DialRenderer {
	return &DialRenderer{}
}

// Render draws background, arms, the 24 hour labels and the UTC offset label
func (r *DialRenderer) Render(c Canvas, f Frame) {
	style := f.Style
	c.DrawBackground(style.Background)

	cx, cy := f.Center()
	radius := f.Radius()
	armTextHeight := c.TextHeight(armReferenceText, style.Hour)

	// Minute arm
	r.drawArm(c, cx, cy, MinuteAngle(float64(f.Sample.LocalMinute)),
		MinuteArmRadius(radius, armTextHeight), style.CurrentHour)

	// Hour arm
	r.drawArm(c, cx, cy, HourAngle(f.Sample.HourFloat),
		HourArmRadius(radius, armTextHeight), style.Hand)

	for hour := 0; hour < 24; hour++ {
		r.drawHourLabel(c, hour, cx, cy, radius, f.Sample, style)
	}

	r.drawUTCLabel(c, f, cx, cy)
}

func (r *DialRenderer) drawArm(c Canvas, cx, cy, angle, length float64, p model.Paint) {
	dx, dy := Offset(angle, length)
	c.DrawLine(cx, cy, cx+dx, cy+dy, p)
}

func (r *DialRenderer) drawHourLabel(c Canvas, hour int, cx, cy, radius float64, sample model.ClockSample, style StyleSet) {
	text := strconv.Itoa(hour)

	// Ring placement always uses the base text height, even for enlarged labels
	textHeight := c.TextHeight(text, style.Hour)
	labelRadius := HourLabelRadius(radius, hour, textHeight)

	paint := style.Hour
	if h := HighlightFor(hour, sample); h != HighlightNone {
		paint = style.BigHour
		paint.Color = style.HighlightColor(h)
	}

	dx, dy := Offset(HourAngle(float64(hour)), labelRadius)
	r.drawTextCenteredVertically(c, text, cx+dx, cy+dy, paint)
}

func (r *DialRenderer) drawTextCenteredVertically(c Canvas, text string, x, y float64, p model.Paint) {
	c.DrawText(text, x, y+c.TextHeight(text, p)/2, p)
}

func (r *DialRenderer) drawUTCLabel(c Canvas, f Frame, cx, cy float64) {
	text := FormatUTCOffset(f.Sample.OffsetHours)
	paint := f.Style.UTCLabel

	if f.Shape == model.ShapeRound {
		paint.Align = model.AlignCenter
		c.DrawText(text, cx, cy, paint)
		return
	}

	paint.Align = model.AlignLeft
	width := c.MeasureText(text, paint)
	x := float64(f.Bounds.Right) - width - constants.UTCLabelRightMargin
	c.DrawText(text, x, float64(f.Bounds.Top)+constants.UTCLabelBaseline, paint)
}
