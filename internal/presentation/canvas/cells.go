package canvas

import (
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
)

// Logical pixels covered by one terminal cell. Cells are twice as tall as
// they are wide, so a square logical area looks square on screen.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// faintAlpha is the effective alpha below which text is rendered faint
const faintAlpha = 160

type cellStyle struct {
	fg    model.Color
	bold  bool
	faint bool
}

type cell struct {
	ch    rune
	style cellStyle
	cont  bool // right half of a double-width rune
}

// Cells is a canvas backed by a grid of terminal character cells.
// Lines are stepped through the grid with slope glyphs, text is placed with
// runewidth-aware column math and every string is one cell tall.
type Cells struct {
	cols  int
	rows  int
	cellW float64
	cellH float64
	grid  []cell
}

// NewCells creates a cols x rows grid
func NewCells(cols, rows int) *Cells {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Cells{
		cols:  cols,
		rows:  rows,
		cellW: DefaultCellWidth,
		cellH: DefaultCellHeight,
		grid:  make([]cell, cols*rows),
	}
	c.clear()
	return c
}

func (c *Cells) Cols() int { return c.cols }
func (c *Cells) Rows() int { return c.rows }

// Bounds returns the grid size in logical pixels
func (c *Cells) Bounds() model.Rect {
	return model.Rect{
		Right:  int(float64(c.cols) * c.cellW),
		Bottom: int(float64(c.rows) * c.cellH),
	}
}

func (c *Cells) clear() {
	for i := range c.grid {
		c.grid[i] = cell{ch: ' '}
	}
}

// DrawBackground blanks the grid. The terminal's own background shows through.
func (c *Cells) DrawBackground(model.Color) {
	c.clear()
}

// DrawLine steps from one end to the other with Bresenham's algorithm
func (c *Cells) DrawLine(x1, y1, x2, y2 float64, p model.Paint) {
	col, row := c.toCell(x1, y1)
	endCol, endRow := c.toCell(x2, y2)
	glyph := lineGlyph(x2-x1, y2-y1, p.AntiAlias)
	style := styleFor(p)

	dx := absInt(endCol - col)
	dy := -absInt(endRow - row)
	sx, sy := 1, 1
	if col > endCol {
		sx = -1
	}
	if row > endRow {
		sy = -1
	}
	err := dx + dy

	for {
		c.set(col, row, glyph, style)
		if col == endCol && row == endRow {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			col += sx
		}
		if e2 <= dx {
			err += dx
			row += sy
		}
	}
}

// DrawText writes text on the row whose center sits half a cell above the
// baseline y
func (c *Cells) DrawText(text string, x, y float64, p model.Paint) {
	width := util.GetDisplayWidth(text)
	col := int(math.Floor(x / c.cellW))
	if p.Align == model.AlignCenter {
		col = int(math.Round(x/c.cellW - float64(width)/2))
	}
	row := int(math.Floor((y - c.cellH/2) / c.cellH))
	style := styleFor(p)

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(col, row, r, style)
		if w == 2 && c.inside(col, row) && c.inside(col+1, row) {
			c.grid[row*c.cols+col+1] = cell{style: style, cont: true}
		}
		col += w
	}
}

// MeasureText returns the width of text in logical pixels
func (c *Cells) MeasureText(text string, _ model.Paint) float64 {
	return float64(util.GetDisplayWidth(text)) * c.cellW
}

// TextHeight is always one cell; terminals cannot scale glyphs
func (c *Cells) TextHeight(string, model.Paint) float64 {
	return c.cellH
}

// At returns the rune at a cell, or 0 outside the grid
func (c *Cells) At(col, row int) rune {
	if !c.inside(col, row) {
		return 0
	}
	return c.grid[row*c.cols+col].ch
}

// PlainLines returns the grid as uncolored text rows
func (c *Cells) PlainLines() []string {
	lines := make([]string, c.rows)
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		sb.Reset()
		for col := 0; col < c.cols; col++ {
			cl := c.grid[row*c.cols+col]
			if !cl.cont {
				sb.WriteRune(cl.ch)
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// Lines returns the grid as colored text rows. Runs of equally styled cells
// share one escape sequence.
func (c *Cells) Lines() []string {
	lines := make([]string, c.rows)
	var sb, run strings.Builder

	for row := 0; row < c.rows; row++ {
		sb.Reset()
		run.Reset()
		var runStyle cellStyle
		runBlank := true

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runBlank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(colorFor(runStyle).Sprint(run.String()))
			}
			run.Reset()
		}

		for col := 0; col < c.cols; col++ {
			cl := c.grid[row*c.cols+col]
			if cl.cont {
				continue
			}
			blank := cl.ch == ' '
			if blank != runBlank || (!blank && cl.style != runStyle) {
				flush()
				runBlank = blank
				runStyle = cl.style
			}
			run.WriteRune(cl.ch)
		}
		flush()
		lines[row] = sb.String()
	}
	return lines
}

func (c *Cells) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

func (c *Cells) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *Cells) set(col, row int, ch rune, style cellStyle) {
	if !c.inside(col, row) {
		return
	}
	c.grid[row*c.cols+col] = cell{ch: ch, style: style}
}

func styleFor(p model.Paint) cellStyle {
	fg := p.Effective()
	return cellStyle{
		fg:    model.Color{R: fg.R, G: fg.G, B: fg.B, A: 0xff},
		bold:  p.Bold,
		faint: fg.A < faintAlpha,
	}
}

// lineGlyph picks a character following the line's slope. Aliased lines
// (low-bit ambient) use a solid block.
func lineGlyph(dx, dy float64, antiAlias bool) rune {
	if !antiAlias {
		return '#'
	}
	if dx == 0 && dy == 0 {
		return '+'
	}
	deg := math.Atan2(-dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '-'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '|'
	default:
		return '\\'
	}
}

type ansiColor struct {
	attr    color.Attribute
	r, g, b int
}

var ansiPalette = []ansiColor{
	{color.FgBlack, 0, 0, 0},
	{color.FgRed, 205, 0, 0},
	{color.FgGreen, 0, 205, 0},
	{color.FgYellow, 205, 205, 0},
	{color.FgBlue, 0, 0, 238},
	{color.FgMagenta, 205, 0, 205},
	{color.FgCyan, 0, 205, 205},
	{color.FgWhite, 229, 229, 229},
	{color.FgHiBlack, 127, 127, 127},
	{color.FgHiRed, 255, 0, 0},
	{color.FgHiGreen, 0, 255, 0},
	{color.FgHiYellow, 255, 255, 0},
	{color.FgHiBlue, 92, 92, 255},
	{color.FgHiMagenta, 255, 0, 255},
	{color.FgHiCyan, 0, 255, 255},
	{color.FgHiWhite, 255, 255, 255},
}

// nearestAttribute maps an RGB color onto the closest of the 16 ANSI colors
func nearestAttribute(c model.Color) color.Attribute {
	best := ansiPalette[0].attr
	bestDist := math.MaxInt
	for _, pc := range ansiPalette {
		dr := int(c.R) - pc.r
		dg := int(c.G) - pc.g
		db := int(c.B) - pc.b
		if dist := dr*dr + dg*dg + db*db; dist < bestDist {
			best, bestDist = pc.attr, dist
		}
	}
	return best
}

func colorFor(s cellStyle) *color.Color {
	attrs := []color.Attribute{nearestAttribute(s.fg)}
	if s.bold {
		attrs = append(attrs, color.Bold)
	}
	if s.faint {
		attrs = append(attrs, color.Faint)
	}
	return color.New(attrs...)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
