package face

import (
	"math"

	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/core/model"
)

// HourAngle returns the clockwise angle from 12 o'clock, in radians, of a
// (possibly fractional) hour on a 12-hour dial
func HourAngle(hour float64) float64 {
	return hour * math.Pi * 2 / 12
}

// MinuteAngle returns the clockwise angle from 12 o'clock of a minute
func MinuteAngle(minute float64) float64 {
	return minute * math.Pi * 2 / 60
}

// Offset converts an angle and radius into a cartesian offset from the dial
// center. Y grows downwards, so angle 0 points up.
func Offset(angle, radius float64) (x, y float64) {
	return math.Sin(angle) * radius, -math.Cos(angle) * radius
}

// HourLabelRadius places the label of a 24-hour value on the spiral dial.
// Afternoon hours move three text heights inwards onto the inner ring.
func HourLabelRadius(radius float64, hour int, textHeight float64) float64 {
	inset := 0.0
	if hour > 11 {
		inset = textHeight * constants.InnerRingInsetFactor
	}
	return ClampDimension(radius - constants.LabelMargin - textHeight - inset)
}

// MinuteArmRadius is the length of the minute arm, kept inside both rings
func MinuteArmRadius(radius, textHeight float64) float64 {
	inset := textHeight * constants.MinuteArmInsetFactor
	return ClampDimension(radius - constants.LabelMargin - textHeight - inset)
}

// HourArmRadius is half the minute arm
func HourArmRadius(radius, textHeight float64) float64 {
	return ClampDimension(MinuteArmRadius(radius, textHeight) / 2)
}

// ClampDimension maps non-finite values and anything below the minimum
// usable size to that minimum
func ClampDimension(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < constants.MinDimension {
		return constants.MinDimension
	}
	return v
}

// Highlight is the emphasis applied to an hour label
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightLocal
	HighlightGMT
)

func (h Highlight) String() string {
	switch h {
	case HighlightLocal:
		return "local"
	case HighlightGMT:
		return "gmt"
	default:
		return "none"
	}
}

// HighlightFor picks the emphasis for hour. The local hour takes precedence
// when it coincides with the GMT hour.
func HighlightFor(hour int, sample model.ClockSample) Highlight {
	if hour == sample.LocalHour {
		return HighlightLocal
	}
	if hour == sample.GMTHour {
		return HighlightGMT
	}
	return HighlightNone
}
