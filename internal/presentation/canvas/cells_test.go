package canvas

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = model.Paint{Color: model.Color{R: 255, G: 255, B: 255, A: 255}, Alpha: 255, AntiAlias: true}

func TestCells_Bounds(t *testing.T) {
	c := NewCells(10, 5)
	assert.Equal(t, model.Rect{Right: 80, Bottom: 80}, c.Bounds())

	empty := NewCells(0, -3)
	assert.Equal(t, 1, empty.Cols())
	assert.Equal(t, 1, empty.Rows())
}

func TestCells_DrawLine(t *testing.T) {
	c := NewCells(10, 5)

	c.DrawLine(0, 8, 72, 8, white)
	for col := 0; col < 10; col++ {
		assert.Equal(t, '-', c.At(col, 0), "col %d", col)
	}

	c.DrawLine(4, 20, 4, 79, white)
	for row := 1; row < 5; row++ {
		assert.Equal(t, '|', c.At(0, row), "row %d", row)
	}

	aliased := white
	aliased.AntiAlias = false
	c.DrawLine(76, 20, 76, 40, aliased)
	assert.Equal(t, '#', c.At(9, 1))
	assert.Equal(t, '#', c.At(9, 2))

	// Off-grid segments are clipped
	c.DrawLine(-100, -100, 500, 500, white)
	assert.Equal(t, rune(0), c.At(-1, 0))
}

func TestCells_DrawText(t *testing.T) {
	c := NewCells(10, 5)

	centered := white
	centered.Align = model.AlignCenter
	c.DrawText("UTC", 40, 40, centered)

	lines := c.PlainLines()
	require.Len(t, lines, 5)
	assert.Equal(t, "    UTC   ", lines[2])

	c.DrawText("世", 0, 8, white)
	assert.Equal(t, "世        ", c.PlainLines()[0])

	c.DrawBackground(model.Color{})
	assert.Equal(t, strings.Repeat(" ", 10), c.PlainLines()[2])
}

func TestCells_WideRuneClippedAtLeftEdge(t *testing.T) {
	c := NewCells(4, 1)

	// Starts at column -1, so only its right half would be on the grid
	c.DrawText("世", -8, 8, white)

	assert.Equal(t, "    ", c.PlainLines()[0])
	assert.Equal(t, ' ', c.At(0, 0))
}

func TestCells_Measure(t *testing.T) {
	c := NewCells(4, 4)
	assert.Equal(t, 24.0, c.MeasureText("UTC", white))
	assert.Equal(t, 2*DefaultCellWidth, c.MeasureText("世", white))
	assert.Equal(t, DefaultCellHeight, c.TextHeight("UTC", white))
}

func TestCells_Lines(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	c := NewCells(6, 1)
	c.DrawText("12", 0, 8, white)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "\x1b[")
	assert.Contains(t, lines[0], "12")
	assert.True(t, strings.HasSuffix(lines[0], "    "), "blank runs are left uncolored")
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float64
		antiAlias bool
		want      rune
	}{
		{"horizontal", 10, 0, true, '-'},
		{"vertical", 0, 10, true, '|'},
		{"rising", 10, -10, true, '/'},
		{"falling", 10, 10, true, '\\'},
		{"point", 0, 0, true, '+'},
		{"aliased", 10, 0, false, '#'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineGlyph(tt.dx, tt.dy, tt.antiAlias))
		})
	}
}

func TestNearestAttribute(t *testing.T) {
	assert.Equal(t, color.FgHiWhite, nearestAttribute(model.Color{R: 255, G: 255, B: 255}))
	assert.Equal(t, color.FgRed, nearestAttribute(model.Color{R: 200, G: 10, B: 0}))
	assert.Equal(t, color.FgBlack, nearestAttribute(model.Color{}))
}

func TestStyleFor(t *testing.T) {
	p := white
	p.Bold = true
	p.Alpha = 80

	s := styleFor(p)
	assert.True(t, s.bold)
	assert.True(t, s.faint)
	assert.Equal(t, uint8(0xff), s.fg.A)

	assert.False(t, styleFor(white).faint)
}
