package physics

import (
	"math"

	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/vmath"
)

// Proximity measures how far point p is from segment a-b
type Proximity interface {
	Distance(p, a, b vmath.Vec2) float64
}

// MidpointProximity approximates the segment by its midpoint
// Under-detects near the segment ends and over-detects beside the middle
type MidpointProximity struct{}

func (MidpointProximity) Distance(p, a, b vmath.Vec2) float64 {
	return vmath.V2Dist(p, vmath.V2Mid(a, b))
}

// SegmentProximity uses the nearest point on the segment
type SegmentProximity struct{}

func (SegmentProximity) Distance(p, a, b vmath.Vec2) float64 {
	return vmath.V2Dist(p, vmath.V2ClosestOnSegment(p, a, b))
}

// Contact records one ball-flipper overlap resolved in a tick
type Contact struct {
	Side     core.Side
	Distance float64
}

// Resolver applies flipper bounces to the ball
// Flippers are kinematic: Resolve never mutates them
type Resolver struct {
	Proximity    Proximity
	Impulse      FlipperImpulse
	FlipperWidth float64
}

// NewResolver creates a resolver with midpoint proximity and the default impulse profile
func NewResolver(flipperWidth float64) *Resolver {
	return &Resolver{
		Proximity:    MidpointProximity{},
		Impulse:      DefaultFlipperImpulse,
		FlipperWidth: flipperWidth,
	}
}

// Resolve tests the ball against each flipper in order and applies the impulse on overlap
// A ball overlapping two flippers receives both updates sequentially
// There is no cooldown: a ball that stays in range is kicked again every tick
func (r *Resolver) Resolve(b *core.Ball, flippers []*core.Flipper) []Contact {
	var contacts []Contact
	threshold := b.Radius + r.FlipperWidth/2

	for _, f := range flippers {
		dist := r.Proximity.Distance(b.Pos, f.Pivot, f.Tip())
		if dist >= threshold {
			continue
		}
		b.Vel.Y = -math.Abs(b.Vel.Y)*r.Impulse.Amplify - r.Impulse.MinImpulse
		ApplyImpulse(b, (b.Pos.X-f.Pivot.X)*r.Impulse.LateralGain, 0)
		contacts = append(contacts, Contact{Side: f.Side, Distance: dist})
	}
	return contacts
}
