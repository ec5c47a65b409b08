package face

import "github.com/penwyp/go-utc-face/internal/core/model"

// Palette holds the fixed colors of the design
type Palette struct {
	Background  model.Color
	HourDefault model.Color
	Hand        model.Color
	CurrentHour model.Color
	GMTHour     model.Color
	UTCLabel    model.Color
	Ambient     model.Color
}

// Dimensions holds text sizes per display shape and stroke widths
type Dimensions struct {
	HourTextSize         float64
	HourTextSizeRound    float64
	BigHourTextSize      float64
	BigHourTextSizeRound float64
	HandStrokeWidth      float64
	CurrentHourStroke    float64
}

// Resources is the color and dimension table the style resolver reads
type Resources struct {
	Colors     Palette
	Dimensions Dimensions
}

// DefaultResources returns the built-in design values
func DefaultResources() Resources {
	return Resources{
		Colors: Palette{
			Background:  model.Color{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
			HourDefault: model.Color{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xff},
			Hand:        model.Color{R: 0xFF, G: 0xB3, B: 0x00, A: 0xff},
			CurrentHour: model.Color{R: 0x29, G: 0xB6, B: 0xF6, A: 0xff},
			GMTHour:     model.Color{R: 0xEF, G: 0x53, B: 0x50, A: 0xff},
			UTCLabel:    model.Color{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xff},
			Ambient:     model.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xff},
		},
		Dimensions: Dimensions{
			HourTextSize:         16,
			HourTextSizeRound:    18,
			BigHourTextSize:      24,
			BigHourTextSizeRound: 28,
			HandStrokeWidth:      4,
			CurrentHourStroke:    3,
		},
	}
}

func (d Dimensions) hourTextSize(shape model.Shape) float64 {
	if shape == model.ShapeRound {
		return d.HourTextSizeRound
	}
	return d.HourTextSize
}

func (d Dimensions) bigHourTextSize(shape model.Shape) float64 {
	if shape == model.ShapeRound {
		return d.BigHourTextSizeRound
	}
	return d.BigHourTextSize
}
