package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/pinball/engine"
)

// KeyboardSource reads flipper state from real key-down events
type KeyboardSource struct {
	Left, Right ebiten.Key
	pressed     func(ebiten.Key) bool
}

// NewKeyboardSource resolves the configured flipper keys
func NewKeyboardSource(cfg engine.InputConfig) (*KeyboardSource, error) {
	left, err := ParseKey(cfg.Left)
	if err != nil {
		return nil, fmt.Errorf("left flipper: %w", err)
	}
	right, err := ParseKey(cfg.Right)
	if err != nil {
		return nil, fmt.Errorf("right flipper: %w", err)
	}
	if left == right {
		return nil, fmt.Errorf("flipper keys both bound to %s", left)
	}
	return &KeyboardSource{Left: left, Right: right, pressed: ebiten.IsKeyPressed}, nil
}

// Controls implements engine.InputSource
func (s *KeyboardSource) Controls() engine.Controls {
	return engine.Controls{
		Left:  s.pressed(s.Left),
		Right: s.pressed(s.Right),
	}
}
