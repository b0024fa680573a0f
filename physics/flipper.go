package physics

import "github.com/lixenwraith/pinball/core"

// Damping factors for flipper kinematics
const (
	// DampingAnimated closes 18% of the remaining angle per tick
	DampingAnimated = 0.18
	// DampingDiscrete snaps to the target in one tick
	DampingDiscrete = 1.0
)

// StepFlipper moves the flipper angle toward its selected target by fraction k
// For 0 < k < 1 the approach is monotonic and never overshoots; k >= 1 assigns the target
func StepFlipper(f *core.Flipper, k float64) {
	target := f.Target()
	if k >= 1 {
		f.Angle = target
		return
	}
	f.Angle += (target - f.Angle) * k
}
