package engine

import (
	"fmt"

	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/vmath"
)

// Controls are the two flipper activation signals polled once per tick
type Controls struct {
	Left, Right bool
}

// spawnRule places the ball on entry and after every floor exit
type spawnRule struct {
	margin int
	y      float64
	vy     float64
	spread float64
}

// Simulation owns all mutable state of one table
// Step is the only mutator during play; renderers read through Frame
type Simulation struct {
	Arena core.Arena
	Ball  core.Ball
	Left  *core.Flipper
	Right *core.Flipper

	Resolver *physics.Resolver
	Wall     physics.WallProfile
	Gravity  float64
	Damping  float64

	// PhysicsEnabled false freezes the ball and skips collision
	PhysicsEnabled bool
	LauncherLane   bool

	phase         Phase
	launcherPower int
	tick          uint64
	spawn         spawnRule
	rng           Randomizer
	flippers      []*core.Flipper
}

// NewSimulation builds a table from validated config and places the ball
func NewSimulation(cfg Config, rng Randomizer) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil randomizer", ErrInvalidConfig)
	}

	left, err := newFlipper(core.SideLeft, cfg.Flippers.Length, cfg.Flippers.Left)
	if err != nil {
		return nil, err
	}
	right, err := newFlipper(core.SideRight, cfg.Flippers.Length, cfg.Flippers.Right)
	if err != nil {
		return nil, err
	}

	proximity, err := proximityByName(cfg.Flippers.Proximity)
	if err != nil {
		return nil, err
	}
	resolver := physics.NewResolver(cfg.Flippers.Width)
	resolver.Proximity = proximity

	s := &Simulation{
		Arena:          core.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		Ball:           core.Ball{Radius: cfg.Ball.Radius},
		Left:           left,
		Right:          right,
		Resolver:       resolver,
		Wall:           physics.WallProfile{Restitution: cfg.Ball.Restitution},
		Gravity:        cfg.Ball.Gravity,
		Damping:        cfg.Flippers.Damping,
		PhysicsEnabled: cfg.Loop.Physics,
		LauncherLane:   cfg.Arena.LauncherLane,
		phase:          PhaseReady,
		launcherPower:  1,
		spawn: spawnRule{
			margin: cfg.Ball.SpawnMargin,
			y:      cfg.Ball.SpawnY,
			vy:     cfg.Ball.SpawnVY,
			spread: cfg.Ball.SpawnSpread,
		},
		rng: rng,
	}
	s.flippers = []*core.Flipper{s.Left, s.Right}
	s.Respawn()
	return s, nil
}

func newFlipper(side core.Side, length float64, fc FlipperConfig) (*core.Flipper, error) {
	f, err := core.NewFlipper(side, vmath.V2(fc.Pivot[0], fc.Pivot[1]), length, fc.RestAngle, fc.ActiveAngle)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return f, nil
}

// Respawn resets the ball in place with fresh random draws
func (s *Simulation) Respawn() {
	x := s.rng.IntRange(s.spawn.margin, int(s.Arena.Width)-s.spawn.margin)
	s.Ball.Pos = vmath.V2(float64(x), s.spawn.y)
	s.Ball.Vel = vmath.V2(s.rng.FloatRange(-s.spawn.spread, s.spawn.spread), s.spawn.vy)
}

// Step runs one update pass in fixed order:
// controls, flipper kinematics, integration, walls, ceiling, floor exit, flipper collision
func (s *Simulation) Step(c Controls) TickReport {
	s.tick++
	report := TickReport{Tick: s.tick}

	s.Left.SetActivated(c.Left)
	s.Right.SetActivated(c.Right)
	physics.StepFlipper(s.Left, s.Damping)
	physics.StepFlipper(s.Right, s.Damping)

	if !s.PhysicsEnabled {
		return report
	}

	physics.Integrate(&s.Ball, s.Gravity)

	if physics.ReflectWalls(&s.Ball, s.Arena, s.Wall.Restitution) {
		report.add(EventWallBounce, 0)
	}
	if physics.ReflectCeiling(&s.Ball, s.Wall.Restitution) {
		report.add(EventCeilingBounce, 0)
	}
	if physics.FloorExited(&s.Ball, s.Arena) {
		s.Respawn()
		report.add(EventRespawn, 0)
	}

	for _, contact := range s.Resolver.Resolve(&s.Ball, s.flippers) {
		report.add(EventFlipperHit, contact.Side)
	}
	return report
}

// Tick returns the number of completed steps
func (s *Simulation) Tick() uint64 {
	return s.tick
}

func (s *Simulation) Phase() Phase {
	return s.phase
}

// SetPhase is a manual transition hook for the surrounding application
func (s *Simulation) SetPhase(p Phase) {
	s.phase = p
}

func (s *Simulation) LauncherPower() int {
	return s.launcherPower
}

// MaxLauncherPower bounds the launcher visual offset in arena units
const MaxLauncherPower = 20

// SetLauncherPower sets the launcher visual offset, clamped to [0, MaxLauncherPower]; it has no physical effect
func (s *Simulation) SetLauncherPower(p int) {
	s.launcherPower = min(max(p, 0), MaxLauncherPower)
}

// ChargeLauncher raises the launcher visual by one step, wrapping to 1 past the maximum
func (s *Simulation) ChargeLauncher() {
	if s.launcherPower >= MaxLauncherPower {
		s.launcherPower = 1
		return
	}
	s.launcherPower++
}
