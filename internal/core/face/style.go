package face

import (
	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
)

// StyleSet is every paint and color one frame needs
type StyleSet struct {
	Background model.Color

	Hour        model.Paint // base hour labels
	BigHour     model.Paint // highlighted hour labels, color replaced per label
	Hand        model.Paint // hour arm
	CurrentHour model.Paint // minute arm
	UTCLabel    model.Paint

	LocalHighlight model.Color
	GMTHighlight   model.Color
}

// HighlightColor returns the label color for h, or the base hour color
func (s StyleSet) HighlightColor(h Highlight) model.Color {
	switch h {
	case HighlightLocal:
		return s.LocalHighlight
	case HighlightGMT:
		return s.GMTHighlight
	default:
		return s.Hour.Color
	}
}

// ResolveStyle derives the paints for a display mode and shape.
// Ambient collapses the hand and highlight colors to the ambient color and,
// on low-bit displays, turns anti-aliasing off. Muted lowers alpha.
func ResolveStyle(mode model.DisplayMode, shape model.Shape, res Resources) StyleSet {
	colors := res.Colors
	dims := res.Dimensions
	antiAlias := !(mode.Ambient && mode.LowBitAmbient)

	style := StyleSet{
		Background: colors.Background,
		Hour: model.Paint{
			Color:     colors.HourDefault,
			Alpha:     constants.AlphaOpaque,
			AntiAlias: antiAlias,
			TextSize:  dims.hourTextSize(shape),
			Align:     model.AlignCenter,
			Bold:      true,
		},
		Hand: model.Paint{
			Color:       colors.Hand,
			Alpha:       constants.AlphaOpaque,
			AntiAlias:   antiAlias,
			StrokeWidth: dims.HandStrokeWidth,
		},
		CurrentHour: model.Paint{
			Color:       colors.CurrentHour,
			Alpha:       constants.AlphaOpaque,
			AntiAlias:   antiAlias,
			StrokeWidth: dims.CurrentHourStroke,
		},
		UTCLabel: model.Paint{
			Color:     colors.UTCLabel,
			Alpha:     constants.UTCLabelAlpha,
			AntiAlias: antiAlias,
			TextSize:  dims.hourTextSize(shape),
			Align:     model.AlignLeft,
		},
		LocalHighlight: colors.CurrentHour,
		GMTHighlight:   colors.GMTHour,
	}

	if shape == model.ShapeRound {
		style.UTCLabel.Align = model.AlignCenter
	}

	if mode.Ambient {
		style.Hand.Color = colors.Ambient
		style.CurrentHour.Color = colors.Ambient
		style.LocalHighlight = colors.Ambient
		style.GMTHighlight = colors.Ambient
	}

	if mode.Muted {
		style.Hour.Alpha = constants.MutedHourAlpha
		style.Hand.Alpha = constants.MutedHandAlpha
		style.CurrentHour.Alpha = constants.MutedCurrentHourAlpha
		style.UTCLabel.Alpha = constants.MutedUTCLabelAlpha
	}

	style.BigHour = style.Hour
	style.BigHour.TextSize = dims.bigHourTextSize(shape)
	return style
}

type styleKey struct {
	mode  model.DisplayMode
	shape model.Shape
}

// StyleCache holds the style for the last (mode, shape) pair and only
// resolves again when either changes
type StyleCache struct {
	res   Resources
	key   styleKey
	style StyleSet
	valid bool
}

func NewStyleCache(res Resources) *StyleCache {
	return &StyleCache{res: res}
}

// Get returns the cached style, resolving it first if the key moved
func (c *StyleCache) Get(mode model.DisplayMode, shape model.Shape) StyleSet {
	key := styleKey{mode: mode, shape: shape}
	if c.valid && c.key == key {
		return c.style
	}

	c.style = ResolveStyle(mode, shape, c.res)
	c.key = key
	c.valid = true
	util.LogDebugf("Resolved style for %s %s display", mode, shape)
	return c.style
}

// Resources returns the table the cache resolves against
func (c *StyleCache) Resources() Resources {
	return c.res
}
