package core

import (
	"fmt"

	"github.com/lixenwraith/pinball/vmath"
)

// Ball is the single persistent ball, reset in place on floor exit
type Ball struct {
	// Pos is the ball center in arena units
	Pos vmath.Vec2
	// Vel is displacement per tick in arena units
	Vel vmath.Vec2
	// Radius is fixed for the ball's lifetime
	Radius float64
}

// Validate reports a non-positive radius
func (b *Ball) Validate() error {
	if b.Radius <= 0 {
		return fmt.Errorf("%w: ball radius %g must be positive", ErrInvalidGeometry, b.Radius)
	}
	return nil
}
