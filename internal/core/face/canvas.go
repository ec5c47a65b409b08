package face

import "github.com/penwyp/go-utc-face/internal/core/model"

// Canvas is the drawing surface a frame is rendered onto. Coordinates are
// canvas pixels with the origin at the top left. DrawText places the
// baseline at y and anchors x according to the paint alignment.
type Canvas interface {
	DrawBackground(c model.Color)
	DrawLine(x1, y1, x2, y2 float64, p model.Paint)
	DrawText(text string, x, y float64, p model.Paint)
	MeasureText(text string, p model.Paint) float64
	TextHeight(text string, p model.Paint) float64
}
