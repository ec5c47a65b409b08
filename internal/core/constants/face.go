package constants

import "time"

const (
	// Interactive redraw cadence (20 fps), aligned to wall-clock boundaries
	InteractiveUpdatePeriod = 50 * time.Millisecond

	// Ambient displays get one redraw per minute from the host
	AmbientTickInterval = time.Minute

	// Height animation
	AnimationPixelsPerSecond = 200.0
	GrowVelocityMultiplier   = 1.5
	HeightDebounceMs         = int64(200)

	// Smallest usable radius or height
	MinDimension = 1.0
)

// Dial layout, in canvas pixels or multiples of the label text height
const (
	LabelMargin          = 10.0
	InnerRingInsetFactor = 3.0
	MinuteArmInsetFactor = 5.0
	UTCLabelRightMargin  = 20.0
	UTCLabelBaseline     = 30.0
)

// Paint alpha values
const (
	AlphaOpaque           = 255
	UTCLabelAlpha         = 180
	MutedHourAlpha        = 100
	MutedHandAlpha        = 100
	MutedCurrentHourAlpha = 80
	MutedUTCLabelAlpha    = 80
)
