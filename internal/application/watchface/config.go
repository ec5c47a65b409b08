package watchface

import (
	"fmt"
	"time"

	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/core/model"
	"github.com/penwyp/go-utc-face/internal/util"
)

// DefaultTimezoneFile is the tzfile watched for system zone changes
const DefaultTimezoneFile = "/etc/localtime"

// FaceConfig contains configuration for the face hosts
type FaceConfig struct {
	// Zone settings
	Timezone      string
	TimezoneFile  string
	WatchTimezone bool

	// Display settings
	Round         bool
	Ambient       bool
	LowBitAmbient bool
	Muted         bool
	ResourcesFile string

	// Host state file driven by an external process
	EventsFile string

	// Tick settings
	UpdatePeriod        time.Duration
	AmbientTickInterval time.Duration
}

// Validate checks if the configuration is valid and fills in defaults
func (c *FaceConfig) Validate() error {
	if c.Timezone == "" {
		c.Timezone = util.LocalZone
	}
	if c.TimezoneFile == "" {
		c.TimezoneFile = DefaultTimezoneFile
	}
	if c.UpdatePeriod < 0 {
		return fmt.Errorf("update period must not be negative, got %s", c.UpdatePeriod)
	}
	if c.UpdatePeriod == 0 {
		c.UpdatePeriod = constants.InteractiveUpdatePeriod
	}
	if c.AmbientTickInterval < 0 {
		return fmt.Errorf("ambient tick interval must not be negative, got %s", c.AmbientTickInterval)
	}
	if c.AmbientTickInterval == 0 {
		c.AmbientTickInterval = constants.AmbientTickInterval
	}
	return nil
}

// Mode returns the initial display mode
func (c *FaceConfig) Mode() model.DisplayMode {
	return model.DisplayMode{
		Ambient:       c.Ambient,
		LowBitAmbient: c.LowBitAmbient,
		Muted:         c.Muted,
	}
}

// Shape returns the initial display shape
func (c *FaceConfig) Shape() model.Shape {
	if c.Round {
		return model.ShapeRound
	}
	return model.ShapeRectangular
}
