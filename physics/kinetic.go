package physics

import (
	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/vmath"
)

// Integrate performs one explicit Euler tick: v = v + g; p = p + v
// Velocity is not clamped, fall speed grows without bound until the ball exits
func Integrate(b *core.Ball, gravity float64) {
	b.Vel.Y += gravity
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
}

// ReflectWalls handles side wall collision, returns true if reflection occurred
// Clamps the center into [r, width-r]
func ReflectWalls(b *core.Ball, arena core.Arena, restitution float64) bool {
	r := b.Radius
	if b.Pos.X > r && b.Pos.X < arena.Width-r {
		return false
	}
	b.Vel.X *= -restitution
	b.Pos.X = vmath.ClampF(b.Pos.X, r, arena.Width-r)
	return true
}

// ReflectCeiling handles top wall collision, returns true if reflection occurred
func ReflectCeiling(b *core.Ball, restitution float64) bool {
	if b.Pos.Y > b.Radius {
		return false
	}
	b.Vel.Y *= -restitution
	b.Pos.Y = b.Radius
	return true
}

// FloorExited reports whether the ball has left through the bottom edge
// The floor never bounces
func FloorExited(b *core.Ball, arena core.Arena) bool {
	return b.Pos.Y >= arena.ExitY(b.Radius)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(b *core.Ball, dvx, dvy float64) {
	b.Vel.X += dvx
	b.Vel.Y += dvy
}
