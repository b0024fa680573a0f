package input

import (
	"time"

	"github.com/lixenwraith/pinball/engine"
)

// HoldTracker derives a held state from press events
// Terminals deliver the first press and then autorepeat, never a release,
// so a key counts as held until window elapses without a new press
// A zero window makes each press register for exactly one poll
type HoldTracker struct {
	window time.Duration
	clock  engine.TimeSource

	lastPress time.Time
	pressed   bool
	pulse     bool
}

// NewHoldTracker creates a tracker with the given hold window
func NewHoldTracker(window time.Duration, clock engine.TimeSource) *HoldTracker {
	return &HoldTracker{
		window: window,
		clock:  clock,
	}
}

// Press records a key press or autorepeat
func (h *HoldTracker) Press() {
	h.lastPress = h.clock.Now()
	h.pressed = true
	h.pulse = true
}

// Release clears the held state immediately
func (h *HoldTracker) Release() {
	h.pressed = false
	h.pulse = false
}

// Held reports whether the key is considered down now
func (h *HoldTracker) Held() bool {
	if !h.pressed {
		return false
	}
	if h.window <= 0 {
		held := h.pulse
		h.pulse = false
		return held
	}
	if h.clock.Now().Sub(h.lastPress) >= h.window {
		h.pressed = false
		return false
	}
	return true
}
