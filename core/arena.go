package core

import "fmt"

// Arena is the fixed playfield; walls are implicit at x=0, x=Width and y=0
// The bottom edge is an exit, not a wall
type Arena struct {
	Width, Height float64
}

// Validate checks arena size and that walls leave room for a ball of the given radius
func (a Arena) Validate(ballRadius float64) error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: arena %gx%g must have positive size", ErrInvalidGeometry, a.Width, a.Height)
	}
	if a.Width-ballRadius <= ballRadius {
		return fmt.Errorf("%w: wall bounds [%g, %g] reversed for ball radius %g",
			ErrInvalidGeometry, ballRadius, a.Width-ballRadius, ballRadius)
	}
	return nil
}

// ExitY returns the y threshold past which a ball of radius r has left through the floor
func (a Arena) ExitY(r float64) float64 {
	return a.Height + 2*r
}
