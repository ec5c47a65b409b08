package canvas

import (
	"fmt"
	"math"

	"github.com/maypok86/otter/v2"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// defaultTextSize is used for paints without a text size
const defaultTextSize = 16.0

type faceKey struct {
	halfPoints int // size rounded to half a point
	bold       bool
}

// FontCache hands out Go font faces by size and weight, keeping the most
// recently used ones. Faces are not safe for concurrent use, so each
// goroutine that draws or measures text needs its own FontCache.
type FontCache struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   *otter.Cache[faceKey, font.Face]
}

// NewFontCache parses the embedded Go fonts
func NewFontCache() (*FontCache, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	return &FontCache{
		regular: regular,
		bold:    bold,
		faces: otter.Must(&otter.Options[faceKey, font.Face]{
			MaximumSize: 32,
		}),
	}, nil
}

// Face returns the face for a paint's size and weight. If a face cannot be
// built the fixed 7x13 bitmap face is returned instead.
func (fc *FontCache) Face(size float64, bold bool) font.Face {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		size = defaultTextSize
	}
	key := faceKey{halfPoints: int(math.Round(size * 2)), bold: bold}
	if face, ok := fc.faces.GetIfPresent(key); ok {
		return face
	}

	f := fc.regular
	if bold {
		f = fc.bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(key.halfPoints) / 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	fc.faces.Set(key, face)
	return face
}

// FaceFor returns the face for a paint
func (fc *FontCache) FaceFor(p model.Paint) font.Face {
	return fc.Face(p.TextSize, p.Bold)
}

// FontMetrics measures text with real font faces
type FontMetrics struct {
	fonts *FontCache
}

func NewFontMetrics(fonts *FontCache) FontMetrics {
	return FontMetrics{fonts: fonts}
}

// MeasureText returns the advance width of text
func (m FontMetrics) MeasureText(text string, p model.Paint) float64 {
	adv := font.MeasureString(m.fonts.FaceFor(p), text)
	return float64(adv) / 64
}

// TextHeight returns the height of the ink bounds of text
func (m FontMetrics) TextHeight(text string, p model.Paint) float64 {
	bounds, _ := font.BoundString(m.fonts.FaceFor(p), text)
	return float64(bounds.Max.Y-bounds.Min.Y) / 64
}
