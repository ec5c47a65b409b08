package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockSample is the time snapshot a single frame is drawn from
type ClockSample struct {
	LocalHour   int     // 0-23
	LocalMinute int     // 0-59
	HourFloat   float64 // LocalHour + LocalMinute/60, used for the hour hand
	OffsetHours float64 // signed offset of Zone from UTC
	GMTHour     int     // 0-23
	Zone        string
}

// DisplayMode describes how the host is currently showing the face
type DisplayMode struct {
	Ambient       bool
	LowBitAmbient bool
	Muted         bool
}

// Interactive reports whether the display is in full-power mode
func (m DisplayMode) Interactive() bool {
	return !m.Ambient
}

func (m DisplayMode) String() string {
	parts := []string{"interactive"}
	if m.Ambient {
		parts[0] = "ambient"
	}
	if m.LowBitAmbient {
		parts = append(parts, "low-bit")
	}
	if m.Muted {
		parts = append(parts, "muted")
	}
	return strings.Join(parts, "+")
}

// Shape is the physical outline of the display
type Shape int

const (
	ShapeRectangular Shape = iota
	ShapeRound
)

func (s Shape) String() string {
	if s == ShapeRound {
		return "round"
	}
	return "rectangular"
}

// Rect is an integer rectangle in canvas pixels. Right and Bottom are exclusive.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle covers no area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// HeightAnimationState is the persistent state of the height animator.
// Timestamps are wall-clock milliseconds.
type HeightAnimationState struct {
	CurrentHeight   float64
	TargetHeight    int
	LastFrame       int64
	TargetChangedAt int64
	Started         bool
}

// Color is a non-premultiplied 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// WithAlpha returns the color with its alpha scaled by alpha/255
func (c Color) WithAlpha(alpha uint8) Color {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xff)
	return c
}

// Hex formats the color as #RRGGBB or #AARRGGBB when not opaque
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseHexColor parses #RRGGBB or #AARRGGBB
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color '%s': expected #RRGGBB or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color '%s': %w", s, err)
	}
	c := Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}

// Align is the horizontal anchor of drawn text
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Paint carries everything a canvas needs to draw a line or a string
type Paint struct {
	Color       Color
	Alpha       uint8
	AntiAlias   bool
	StrokeWidth float64
	TextSize    float64
	Align       Align
	Bold        bool
}

// Effective returns the paint color with the paint alpha applied
func (p Paint) Effective() Color {
	return p.Color.WithAlpha(p.Alpha)
}
