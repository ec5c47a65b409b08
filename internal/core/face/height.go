package face

import (
	"math"

	"github.com/penwyp/go-utc-face/internal/core/constants"
	"github.com/penwyp/go-utc-face/internal/core/model"
)

// DesiredHeight is the drawing height left above a peek card. A card whose
// top edge is not below the top of the display leaves the full height.
func DesiredHeight(card model.Rect, displayHeight int) int {
	if card.Top > 0 && card.Top < displayHeight {
		return card.Top
	}
	return displayHeight
}

// AdvanceHeight moves the animated drawing height one frame toward desired.
//
// The first frame and every ambient frame snap straight to desired. In
// interactive mode a change of desired is debounced: the height holds still
// until the target has been stable for HeightDebounceMs, then moves at
// AnimationPixelsPerSecond (faster when growing) and lands exactly on the
// target once it is within one step.
func AdvanceHeight(state model.HeightAnimationState, desired int, nowMs int64, ambient bool) model.HeightAnimationState {
	next := state

	switch {
	case !state.Started:
		next.Started = true
		next.CurrentHeight = float64(desired)
		next.TargetChangedAt = nowMs
	case ambient:
		next.CurrentHeight = float64(desired)
		if desired != state.TargetHeight {
			next.TargetChangedAt = nowMs
		}
	default:
		if desired != state.TargetHeight {
			next.TargetChangedAt = nowMs
		}
		if nowMs-next.TargetChangedAt >= constants.HeightDebounceMs {
			next.CurrentHeight = stepHeight(state.CurrentHeight, float64(desired), nowMs-state.LastFrame)
		}
	}

	next.TargetHeight = desired
	next.LastFrame = nowMs
	next.CurrentHeight = ClampDimension(next.CurrentHeight)
	return next
}

func stepHeight(current, target float64, elapsedMs int64) float64 {
	if current == target {
		return current
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}

	velocity := constants.AnimationPixelsPerSecond * float64(elapsedMs) / 1000
	diff := target - current
	if diff > 0 {
		velocity *= constants.GrowVelocityMultiplier
	}

	if math.Abs(diff) <= velocity {
		return target
	}
	if diff > 0 {
		return current + velocity
	}
	return current - velocity
}
