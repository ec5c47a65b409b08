package window

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/presentation/canvas"
	"github.com/penwyp/go-utc-face/internal/presentation/interaction"
	"golang.org/x/image/font"
)

// Keys forwarded to the face loop, mirroring the terminal shortcuts
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyA:      'a',
	ebiten.KeyL:      'l',
	ebiten.KeyM:      'm',
	ebiten.KeyP:      'p',
	ebiten.KeyV:      'v',
	ebiten.KeyS:      's',
	ebiten.KeyQ:      'q',
	ebiten.KeyEscape: interaction.KeyEsc,
}

// Game shows the most recently published display list in a window.
// Frames are produced on another goroutine and handed over with Publish.
type Game struct {
	width  int
	height int
	frame  atomic.Pointer[canvas.DisplayList]
	keys   chan<- interaction.KeyEvent
	closed atomic.Bool

	// Owned by the ebiten goroutine
	fonts *canvas.FontCache
	faces map[font.Face]*text.GoXFace
}

// NewGame creates a window of the given size. Key presses are sent to keys
// without blocking; presses are dropped if nobody is listening.
func NewGame(width, height int, keys chan<- interaction.KeyEvent) (*Game, error) {
	fonts, err := canvas.NewFontCache()
	if err != nil {
		return nil, err
	}
	return &Game{
		width:  width,
		height: height,
		keys:   keys,
		fonts:  fonts,
		faces:  make(map[font.Face]*text.GoXFace),
	}, nil
}

// Bounds returns the drawable area in pixels
func (g *Game) Bounds() model.Rect {
	return model.Rect{Right: g.width, Bottom: g.height}
}

// Publish hands a finished frame to the window. Safe for concurrent use.
func (g *Game) Publish(list *canvas.DisplayList) {
	g.frame.Store(list)
}

// Close makes the next Update end the game loop
func (g *Game) Close() {
	g.closed.Store(true)
}

// Run opens the window and blocks until it is closed. Must be called from
// the main goroutine.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if g.closed.Load() {
		return ebiten.Termination
	}
	for key, r := range keyRunes {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		evType := interaction.KeyChar
		if r == interaction.KeyEsc {
			evType = interaction.KeyEscape
		}
		select {
		case g.keys <- interaction.KeyEvent{Key: r, Type: evType}:
		default:
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	list := g.frame.Load()
	if list == nil {
		screen.Fill(color.Black)
		return
	}
	list.Replay(&painter{game: g, dst: screen})
}

func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

func (g *Game) goFace(p model.Paint) *text.GoXFace {
	f := g.fonts.FaceFor(p)
	face, ok := g.faces[f]
	if !ok {
		face = text.NewGoXFace(f)
		g.faces[f] = face
	}
	return face
}

// painter replays display list operations onto an ebiten image
type painter struct {
	game *Game
	dst  *ebiten.Image
}

func (p *painter) DrawBackground(c model.Color) {
	p.dst.Fill(c)
}

func (p *painter) DrawLine(x1, y1, x2, y2 float64, paint model.Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(p.dst, float32(x1), float32(y1), float32(x2), float32(y2),
		float32(width), paint.Effective(), paint.AntiAlias)
}

// DrawText places the baseline at y
func (p *painter) DrawText(s string, x, y float64, paint model.Paint) {
	face := p.game.goFace(paint)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	if paint.Align == model.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(paint.Effective())
	text.Draw(p.dst, s, face, op)
}
