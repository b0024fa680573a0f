package core

import (
	"fmt"

	"github.com/lixenwraith/pinball/vmath"
)

// Side identifies a flipper
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Flipper is a kinematic segment rotating about a fixed pivot
// Angles are radians in arena space (Y down), so negative angles point up-right
type Flipper struct {
	Side        Side
	Pivot       vmath.Vec2
	Length      float64
	RestAngle   float64
	ActiveAngle float64

	// Angle is the current orientation, moved toward Target() each tick
	Angle float64

	activated bool
}

// NewFlipper creates a flipper resting at RestAngle
func NewFlipper(side Side, pivot vmath.Vec2, length, restAngle, activeAngle float64) (*Flipper, error) {
	f := &Flipper{
		Side:        side,
		Pivot:       pivot,
		Length:      length,
		RestAngle:   restAngle,
		ActiveAngle: activeAngle,
		Angle:       restAngle,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate reports a zero or negative length
func (f *Flipper) Validate() error {
	if f.Length <= 0 {
		return fmt.Errorf("%w: %s flipper length %g must be positive", ErrInvalidGeometry, f.Side, f.Length)
	}
	return nil
}

// SetActivated selects ActiveAngle (true) or RestAngle (false) as target
func (f *Flipper) SetActivated(on bool) {
	f.activated = on
}

func (f *Flipper) Activated() bool {
	return f.activated
}

// Target returns the angle currently being approached
func (f *Flipper) Target() float64 {
	if f.activated {
		return f.ActiveAngle
	}
	return f.RestAngle
}

// Tip returns the free end of the flipper
func (f *Flipper) Tip() vmath.Vec2 {
	return vmath.V2FromAngle(f.Pivot, f.Angle, f.Length)
}

// Midpoint returns the center of the pivot-tip segment
func (f *Flipper) Midpoint() vmath.Vec2 {
	return vmath.V2Mid(f.Pivot, f.Tip())
}
