package watchface

import (
	"bytes"
	"testing"

	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/presentation/canvas"
	"github.com/penwyp/go-utc-face/internal/presentation/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalSurface_FollowsTerminalSize(t *testing.T) {
	var buf bytes.Buffer
	cols, rows := 40, 12
	s := newTerminalSurface(display.NewTerminalDisplay(&buf), func() (int, int) { return cols, rows })

	c, bounds := s.Begin()
	assert.Equal(t, model.Rect{Right: 320, Bottom: 192}, bounds)

	c.DrawText("UTC+0", 0, 24, model.Paint{Color: model.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, Alpha: 0xff})
	require.NoError(t, s.Present())
	assert.Contains(t, buf.String(), "UTC+0")

	cols, rows = 20, 6
	_, bounds = s.Begin()
	assert.Equal(t, model.Rect{Right: 160, Bottom: 96}, bounds)
}

type fakePublisher struct {
	bounds    model.Rect
	published []*canvas.DisplayList
}

func (p *fakePublisher) Bounds() model.Rect { return p.bounds }

func (p *fakePublisher) Publish(list *canvas.DisplayList) {
	p.published = append(p.published, list)
}

func TestRecorderSurface_PublishesFrames(t *testing.T) {
	pub := &fakePublisher{bounds: model.Rect{Right: 400, Bottom: 400}}
	s, err := NewRecorderSurface(pub)
	require.NoError(t, err)
	assert.Nil(t, s.Invalidated())

	c, bounds := s.Begin()
	assert.Equal(t, pub.bounds, bounds)
	c.DrawBackground(model.Color{A: 0xff})
	c.DrawLine(200, 200, 200, 100, model.Paint{StrokeWidth: 4})
	assert.Greater(t, c.MeasureText("12", model.Paint{TextSize: 16}), 0.0)
	require.NoError(t, s.Present())

	require.Len(t, pub.published, 1)
	assert.Equal(t, 2, pub.published[0].Len())
	assert.Equal(t, bounds, pub.published[0].Bounds())
}
