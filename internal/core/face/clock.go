package face

import (
	"time"

	"github.com/penwyp/go-utc-face/internal/core/model"
)

// GMTZone is the zone used to find the GMT hour
const GMTZone = "UTC"

// ClockSource supplies wall-clock time and zone arithmetic.
// Empty or unknown zone names resolve to the source's default zone.
type ClockSource interface {
	Now() time.Time
	LocalTimeComponents(t time.Time, zone string) (hour, minute int)
	OffsetHours(zone string, t time.Time) float64
	DefaultZone() string
}

// SampleClock builds the per-frame clock sample for zone at t
func SampleClock(src ClockSource, t time.Time, zone string) model.ClockSample {
	hour, minute := src.LocalTimeComponents(t, zone)
	gmtHour, _ := src.LocalTimeComponents(t, GMTZone)

	return model.ClockSample{
		LocalHour:   hour,
		LocalMinute: minute,
		HourFloat:   float64(hour) + float64(minute)/60,
		OffsetHours: src.OffsetHours(zone, t),
		GMTHour:     gmtHour,
		Zone:        zone,
	}
}
