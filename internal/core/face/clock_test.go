package face

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/penwyp/go-utc-face/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(t *testing.T, at time.Time, zone string) (*util.TimeProvider, *clockwork.FakeClock) {
	t.Helper()
	fc := clockwork.NewFakeClockAt(at)
	tp, err := util.NewTimeProvider(fc, zone)
	require.NoError(t, err)
	return tp, fc
}

func TestSampleClock(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		zone       string
		wantHour   int
		wantMinute int
		wantOffset float64
	}{
		{"America/St_Johns", 14, 30, -3.5},
		{"Asia/Kolkata", 23, 30, 5.5},
		{"UTC", 18, 0, 0},
		{"Asia/Kathmandu", 23, 45, 5.75},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			tp, _ := newTestClock(t, at, "UTC")
			s := SampleClock(tp, at, tt.zone)

			assert.Equal(t, tt.wantHour, s.LocalHour)
			assert.Equal(t, tt.wantMinute, s.LocalMinute)
			assert.InDelta(t, float64(tt.wantHour)+float64(tt.wantMinute)/60, s.HourFloat, 1e-9)
			assert.InDelta(t, tt.wantOffset, s.OffsetHours, 1e-9)
			assert.Equal(t, 18, s.GMTHour)
			assert.Equal(t, tt.zone, s.Zone)
		})
	}
}

func TestSampleClock_UnknownZoneFallsBack(t *testing.T) {
	at := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	tp, _ := newTestClock(t, at, "Asia/Tokyo")

	s := SampleClock(tp, at, "Nowhere/Atlantis")
	assert.Equal(t, 3, s.LocalHour)
	assert.InDelta(t, 9.0, s.OffsetHours, 1e-9)
	assert.Equal(t, 18, s.GMTHour)
}
