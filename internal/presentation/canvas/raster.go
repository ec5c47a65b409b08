package canvas

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/penwyp/go-utc-face/internal/core/model"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is an in-memory RGBA canvas. Anti-aliased lines go through the
// x/image vector rasterizer, aliased lines are stamped pixel by pixel.
type Raster struct {
	FontMetrics
	img *image.RGBA
}

// NewRaster creates a width x height canvas measuring text with fonts
func NewRaster(width, height int, fonts *FontCache) *Raster {
	return &Raster{
		FontMetrics: NewFontMetrics(fonts),
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the canvas size
func (r *Raster) Bounds() model.Rect {
	b := r.img.Bounds()
	return model.Rect{Left: b.Min.X, Top: b.Min.Y, Right: b.Max.X, Bottom: b.Max.Y}
}

// Image returns the backing image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the canvas as a PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) DrawBackground(c model.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) DrawLine(x1, y1, x2, y2 float64, p model.Paint) {
	width := math.Max(p.StrokeWidth, 1)
	src := image.NewUniform(p.Effective())

	if !p.AntiAlias {
		r.stampLine(x1, y1, x2, y2, int(math.Round(width)), src)
		return
	}

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, length = 1, 1
	}
	// unit direction scaled to half the stroke, extended past both ends for a square cap
	ux, uy := dx/length*width/2, dy/length*width/2
	nx, ny := -uy, ux

	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(x1-ux+nx), float32(y1-uy+ny))
	z.LineTo(float32(x2+ux+nx), float32(y2+uy+ny))
	z.LineTo(float32(x2+ux-nx), float32(y2+uy-ny))
	z.LineTo(float32(x1-ux-nx), float32(y1-uy-ny))
	z.ClosePath()
	z.Draw(r.img, b, src, image.Point{})
}

// stampLine walks the line with Bresenham's algorithm and stamps a square
// brush at every step
func (r *Raster) stampLine(x1, y1, x2, y2 float64, brush int, src image.Image) {
	if brush < 1 {
		brush = 1
	}
	x, y := int(math.Round(x1)), int(math.Round(y1))
	endX, endY := int(math.Round(x2)), int(math.Round(y2))

	dx := absInt(endX - x)
	dy := -absInt(endY - y)
	sx, sy := 1, 1
	if x > endX {
		sx = -1
	}
	if y > endY {
		sy = -1
	}
	err := dx + dy
	half := brush / 2

	for {
		rect := image.Rect(x-half, y-half, x-half+brush, y-half+brush)
		draw.Draw(r.img, rect, src, image.Point{}, draw.Over)
		if x == endX && y == endY {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (r *Raster) DrawText(text string, x, y float64, p model.Paint) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(p.Effective()),
		Face: r.fonts.FaceFor(p),
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	if p.Align == model.AlignCenter {
		d.Dot.X -= d.MeasureString(text) / 2
	}
	d.DrawString(text)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
