package face

import (
	"fmt"
	"math"
)

// FormatUTCOffset renders a signed offset in hours as UTC+5, UTC-3, UTC+5.5
// or UTC-9.5. Offsets that are not a whole number of hours are shown with a
// .5 suffix; the hour part is truncated toward zero.
func FormatUTCOffset(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		hours = 0
	}

	sign := "+"
	if hours < 0 {
		sign = "-"
	}
	whole := int(math.Abs(math.Trunc(hours)))

	if math.Floor(hours*2) != math.Floor(hours)*2 {
		return fmt.Sprintf("UTC%s%d.5", sign, whole)
	}
	return fmt.Sprintf("UTC%s%d", sign, whole)
}
