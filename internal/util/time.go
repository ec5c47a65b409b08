package util

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// LocalZone names the system zone
const LocalZone = "Local"

// TimeProvider is the zone-aware clock used by the face. It resolves zone
// names once and falls back to its default zone for empty or unknown names.
type TimeProvider struct {
	clock    clockwork.Clock
	name     string
	location *time.Location
	zones    map[string]*time.Location
	mu       sync.RWMutex
}

// NewTimeProvider creates a provider over clock with timezone as default
func NewTimeProvider(clock clockwork.Clock, timezone string) (*TimeProvider, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	tp := &TimeProvider{
		clock: clock,
		zones: make(map[string]*time.Location),
	}
	if err := tp.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return tp, nil
}

// SetTimezone updates the default timezone
func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc := time.Local
	name := LocalZone
	if timezone != "" && timezone != LocalZone {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			// Provide helpful error message with examples
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Kolkata, Europe/London, Australia/Adelaide", timezone, err)
		}
		loc = l
		name = timezone
	}

	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.location = loc
	tp.name = name
	return nil
}

// ReloadLocal re-reads the system zone from a tzfile such as /etc/localtime.
// Only a provider whose default is Local is affected. Returns whether the
// default zone changed.
func (tp *TimeProvider) ReloadLocal(tzfile string) (bool, error) {
	data, err := os.ReadFile(tzfile)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", tzfile, err)
	}
	loc, err := time.LoadLocationFromTZData(LocalZone, data)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", tzfile, err)
	}

	tp.mu.Lock()
	defer tp.mu.Unlock()
	if tp.name != LocalZone {
		return false, nil
	}

	now := tp.clock.Now()
	_, oldOffset := now.In(tp.location).Zone()
	_, newOffset := now.In(loc).Zone()
	tp.location = loc
	return oldOffset != newOffset, nil
}

// Clock returns the underlying clock
func (tp *TimeProvider) Clock() clockwork.Clock {
	return tp.clock
}

// DefaultZone returns the name of the default zone
func (tp *TimeProvider) DefaultZone() string {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.name
}

// Location resolves a zone name. Empty, Local, the default zone's own name
// and unknown names all resolve to the default location.
func (tp *TimeProvider) Location(zone string) *time.Location {
	tp.mu.RLock()
	def := tp.location
	isDefault := zone == "" || zone == LocalZone || zone == tp.name
	loc, cached := tp.zones[zone]
	tp.mu.RUnlock()

	if isDefault {
		return def
	}
	if cached {
		// nil marks a name that failed to load
		if loc == nil {
			return def
		}
		return loc
	}

	loaded, err := time.LoadLocation(zone)

	tp.mu.Lock()
	defer tp.mu.Unlock()
	if err != nil {
		LogWarnf("Unknown timezone '%s', falling back to %s", zone, tp.name)
		tp.zones[zone] = nil
		return tp.location
	}
	tp.zones[zone] = loaded
	return loaded
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.clock.Now().In(tp.location)
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

// Format formats a time according to the layout in the configured timezone
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	return tp.In(t).Format(layout)
}

// LocalTimeComponents returns the hour and minute of t in zone
func (tp *TimeProvider) LocalTimeComponents(t time.Time, zone string) (hour, minute int) {
	local := t.In(tp.Location(zone))
	return local.Hour(), local.Minute()
}

// OffsetHours returns the signed UTC offset of zone at t, in hours
func (tp *TimeProvider) OffsetHours(zone string, t time.Time) float64 {
	_, offset := t.In(tp.Location(zone)).Zone()
	return float64(offset) / 3600
}
