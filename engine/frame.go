package engine

import (
	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/vmath"
)

// BallView is the drawable ball
type BallView struct {
	X, Y, R float64
}

// Segment is the drawable flipper line
type Segment struct {
	Side  core.Side
	Pivot vmath.Vec2
	Tip   vmath.Vec2
}

// Frame is a read-only snapshot of the table for one render pass
type Frame struct {
	Arena         core.Arena
	Ball          BallView
	Flippers      [2]Segment
	FlipperWidth  float64
	LauncherLane  bool
	LauncherPower int
	Phase         Phase
	Tick          uint64
}

// Frame snapshots current geometry
func (s *Simulation) Frame() Frame {
	return Frame{
		Arena: s.Arena,
		Ball:  BallView{X: s.Ball.Pos.X, Y: s.Ball.Pos.Y, R: s.Ball.Radius},
		Flippers: [2]Segment{
			{Side: s.Left.Side, Pivot: s.Left.Pivot, Tip: s.Left.Tip()},
			{Side: s.Right.Side, Pivot: s.Right.Pivot, Tip: s.Right.Tip()},
		},
		FlipperWidth:  s.Resolver.FlipperWidth,
		LauncherLane:  s.LauncherLane,
		LauncherPower: s.launcherPower,
		Phase:         s.phase,
		Tick:          s.tick,
	}
}
