package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
)

// TerminalSource turns tcell key events into flipper controls and intents
type TerminalSource struct {
	left  Binding
	right Binding

	leftHold  *HoldTracker
	rightHold *HoldTracker
}

// NewTerminalSource creates a source from the [input] config section
func NewTerminalSource(cfg engine.InputConfig, clock engine.TimeSource) (*TerminalSource, error) {
	left, err := ParseBinding(cfg.Left)
	if err != nil {
		return nil, fmt.Errorf("left flipper key: %w", err)
	}
	right, err := ParseBinding(cfg.Right)
	if err != nil {
		return nil, fmt.Errorf("right flipper key: %w", err)
	}
	if left == right {
		return nil, fmt.Errorf("flipper keys both bound to %s", left)
	}

	return &TerminalSource{
		left:      left,
		right:     right,
		leftHold:  NewHoldTracker(cfg.HoldWindow(), clock),
		rightHold: NewHoldTracker(cfg.HoldWindow(), clock),
	}, nil
}

// HandleKey classifies a key event, recording flipper presses
// Flipper bindings take precedence over the fixed system keys
func (s *TerminalSource) HandleKey(ev *tcell.EventKey) IntentType {
	switch {
	case s.left.Matches(ev):
		s.leftHold.Press()
		return IntentFlipperLeft
	case s.right.Matches(ev):
		s.rightHold.Press()
		return IntentFlipperRight
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyDown:
		return IntentCharge
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return IntentQuit
		case 'p':
			return IntentPause
		case 'r':
			return IntentRespawn
		case 'm':
			return IntentMute
		}
	}
	return IntentNone
}

// Controls implements engine.InputSource
func (s *TerminalSource) Controls() engine.Controls {
	return engine.Controls{
		Left:  s.leftHold.Held(),
		Right: s.rightHold.Held(),
	}
}

// ReleaseAll drops both flippers, used on focus loss or pause
func (s *TerminalSource) ReleaseAll() {
	s.leftHold.Release()
	s.rightHold.Release()
}
