package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/vmath"
)

const eps = 1e-9

func newClassicSim(t *testing.T, rng Randomizer) *Simulation {
	t.Helper()
	if rng == nil {
		rng = &SequenceRandomizer{Ints: []int{64}, Floats: []float64{0}}
	}
	sim, err := NewSimulation(ClassicConfig(), rng)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

// TestSimulationSingleTickScenario verifies one free-fall tick in the 128x256 arena
func TestSimulationSingleTickScenario(t *testing.T) {
	sim := newClassicSim(t, nil)
	sim.Ball.Pos = vmath.V2(60, 40)
	sim.Ball.Vel = vmath.V2(0.5, 1.0)

	report := sim.Step(Controls{})

	if len(report.Events) != 0 {
		t.Errorf("Expected no events, got %v", report.Events)
	}
	if !vmath.ApproxEqual(sim.Ball.Vel.Y, 1.2, eps) {
		t.Errorf("Expected vy 1.2, got %f", sim.Ball.Vel.Y)
	}
	if !vmath.ApproxEqual(sim.Ball.Pos.X, 60.5, eps) || !vmath.ApproxEqual(sim.Ball.Pos.Y, 41.2, eps) {
		t.Errorf("Expected position (60.5, 41.2), got (%f, %f)", sim.Ball.Pos.X, sim.Ball.Pos.Y)
	}
	if report.Tick != 1 || sim.Tick() != 1 {
		t.Errorf("Expected tick 1, got report %d sim %d", report.Tick, sim.Tick())
	}
}

func TestSimulationInitialSpawn(t *testing.T) {
	rng := &SequenceRandomizer{Ints: []int{77}, Floats: []float64{-0.25}}
	sim := newClassicSim(t, rng)

	if sim.Ball.Pos != vmath.V2(77, 40) {
		t.Errorf("Expected spawn at (77, 40), got %v", sim.Ball.Pos)
	}
	if sim.Ball.Vel != vmath.V2(-0.25, 1.0) {
		t.Errorf("Expected spawn velocity (-0.25, 1), got %v", sim.Ball.Vel)
	}
	if rng.IntCalls != 1 || rng.FloatCalls != 1 {
		t.Errorf("Expected one draw each, got %d int %d float", rng.IntCalls, rng.FloatCalls)
	}
}

// TestSimulationRespawnOnFloorExit verifies reset happens within the tick that detects the breach
func TestSimulationRespawnOnFloorExit(t *testing.T) {
	rng := &SequenceRandomizer{Ints: []int{64, 50}, Floats: []float64{0, 0.75}}
	sim := newClassicSim(t, rng)

	sim.Ball.Pos = vmath.V2(64, 262)
	sim.Ball.Vel = vmath.V2(0, 3)

	report := sim.Step(Controls{})

	if !report.Has(EventRespawn) {
		t.Fatal("Expected respawn event")
	}
	if sim.Ball.Pos.Y != 40 {
		t.Errorf("Expected y 40 after respawn, got %f", sim.Ball.Pos.Y)
	}
	if sim.Ball.Pos.X != 50 {
		t.Errorf("Expected fresh x draw 50, got %f", sim.Ball.Pos.X)
	}
	if sim.Ball.Vel != vmath.V2(0.75, 1.0) {
		t.Errorf("Expected fresh velocity (0.75, 1), got %v", sim.Ball.Vel)
	}
	if rng.IntCalls != 2 || rng.FloatCalls != 2 {
		t.Errorf("Expected randomizer re-queried on respawn, got %d int %d float calls", rng.IntCalls, rng.FloatCalls)
	}
}

// TestSimulationRespawnRange drops the ball repeatedly with a seeded randomizer
func TestSimulationRespawnRange(t *testing.T) {
	sim := newClassicSim(t, NewRandomizer(42))
	respawns := 0

	for i := 0; i < 20000 && respawns < 50; i++ {
		report := sim.Step(Controls{})
		if !report.Has(EventRespawn) {
			if sim.Ball.Pos.Y >= sim.Arena.ExitY(sim.Ball.Radius) {
				t.Fatalf("tick %d: ball observed past exit at y %f", i, sim.Ball.Pos.Y)
			}
			continue
		}
		respawns++
		if sim.Ball.Pos.Y != 40 {
			t.Fatalf("Expected y 40 after respawn, got %f", sim.Ball.Pos.Y)
		}
		if sim.Ball.Pos.X < 40 || sim.Ball.Pos.X > 88 {
			t.Fatalf("Expected x in [40, 88], got %f", sim.Ball.Pos.X)
		}
		if sim.Ball.Vel.X < -1 || sim.Ball.Vel.X > 1 {
			t.Fatalf("Expected vx in [-1, 1], got %f", sim.Ball.Vel.X)
		}
	}

	if respawns == 0 {
		t.Fatal("Expected at least one respawn")
	}
}

func TestSimulationWallEvent(t *testing.T) {
	sim := newClassicSim(t, nil)
	sim.Ball.Pos = vmath.V2(126, 100)
	sim.Ball.Vel = vmath.V2(4, 0)

	report := sim.Step(Controls{})

	if !report.Has(EventWallBounce) {
		t.Fatal("Expected wall bounce event")
	}
	if sim.Ball.Pos.X != 124 {
		t.Errorf("Expected x clamped to 124, got %f", sim.Ball.Pos.X)
	}
}

func TestSimulationCeilingEvent(t *testing.T) {
	sim := newClassicSim(t, nil)
	sim.Ball.Pos = vmath.V2(64, 6)
	sim.Ball.Vel = vmath.V2(0, -5)

	report := sim.Step(Controls{})

	if !report.Has(EventCeilingBounce) {
		t.Fatal("Expected ceiling bounce event")
	}
	if sim.Ball.Pos.Y != 4 {
		t.Errorf("Expected y clamped to 4, got %f", sim.Ball.Pos.Y)
	}
}

// TestSimulationFlipperHit verifies collision runs after integration
func TestSimulationFlipperHit(t *testing.T) {
	sim := newClassicSim(t, nil)
	sim.Ball.Pos = sim.Left.Midpoint()
	sim.Ball.Vel = vmath.V2(0, 0)

	report := sim.Step(Controls{})

	var hits []Event
	for _, ev := range report.Events {
		if ev.Kind == EventFlipperHit {
			hits = append(hits, ev)
		}
	}
	if len(hits) != 1 || hits[0].Side != core.SideLeft {
		t.Fatalf("Expected one left flipper hit, got %v", report.Events)
	}
	// vy after gravity is 0.2
	if !vmath.ApproxEqual(sim.Ball.Vel.Y, -0.2*1.1-3, eps) {
		t.Errorf("Expected vy %f, got %f", -0.2*1.1-3, sim.Ball.Vel.Y)
	}
}

// TestSimulationControlsDriveFlippers verifies input reaches kinematics the same tick
func TestSimulationControlsDriveFlippers(t *testing.T) {
	sim := newClassicSim(t, nil)

	sim.Step(Controls{Left: true})

	if sim.Left.Angle != sim.Left.ActiveAngle {
		t.Errorf("Expected left flipper active in discrete mode, got %f", sim.Left.Angle)
	}
	if sim.Right.Angle != sim.Right.RestAngle {
		t.Errorf("Expected right flipper at rest, got %f", sim.Right.Angle)
	}

	sim.Step(Controls{Right: true})

	if sim.Left.Angle != sim.Left.RestAngle {
		t.Errorf("Expected left flipper back at rest, got %f", sim.Left.Angle)
	}
	if sim.Right.Angle != sim.Right.ActiveAngle {
		t.Errorf("Expected right flipper active, got %f", sim.Right.Angle)
	}
}

func TestSimulationArcadeAnimatesFlippers(t *testing.T) {
	sim, err := NewSimulation(ArcadeConfig(), &SequenceRandomizer{Ints: []int{80}})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}

	sim.Step(Controls{Left: true, Right: true})

	if sim.Left.Angle == sim.Left.ActiveAngle || sim.Left.Angle == sim.Left.RestAngle {
		t.Errorf("Expected left flipper between rest and active, got %f", sim.Left.Angle)
	}
	want := 0.7 + (-0.3-0.7)*0.18
	if !vmath.ApproxEqual(sim.Left.Angle, want, eps) {
		t.Errorf("Expected left angle %f, got %f", want, sim.Left.Angle)
	}
}

func TestSimulationPhysicsDisabled(t *testing.T) {
	cfg := ClassicConfig()
	cfg.Loop.Physics = false
	sim, err := NewSimulation(cfg, &SequenceRandomizer{Ints: []int{64}})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	start := sim.Ball

	for i := 0; i < 10; i++ {
		sim.Step(Controls{Left: true})
	}

	if sim.Ball != start {
		t.Errorf("Expected frozen ball, got %+v (was %+v)", sim.Ball, start)
	}
	if sim.Left.Angle != sim.Left.ActiveAngle {
		t.Errorf("Expected flippers to keep moving with physics off")
	}
}

// TestSimulationPhaseInert verifies phase and launcher power only change through hooks
func TestSimulationPhaseInert(t *testing.T) {
	sim := newClassicSim(t, NewRandomizer(1))

	if sim.Phase() != PhaseReady {
		t.Errorf("Expected initial phase READY, got %s", sim.Phase())
	}
	if sim.LauncherPower() != 1 {
		t.Errorf("Expected launcher power 1, got %d", sim.LauncherPower())
	}

	for i := 0; i < 500; i++ {
		sim.Step(Controls{Left: i%2 == 0})
	}
	if sim.Phase() != PhaseReady || sim.LauncherPower() != 1 {
		t.Errorf("Expected phase and power untouched, got %s %d", sim.Phase(), sim.LauncherPower())
	}

	sim.SetPhase(PhaseGameOver)
	sim.SetLauncherPower(-3)
	if sim.Phase() != PhaseGameOver {
		t.Errorf("Expected GAMEOVER after hook, got %s", sim.Phase())
	}
	if sim.LauncherPower() != 0 {
		t.Errorf("Expected negative power clamped to 0, got %d", sim.LauncherPower())
	}
}

func TestChargeLauncher(t *testing.T) {
	sim := newClassicSim(t, NewRandomizer(1))

	sim.ChargeLauncher()
	if sim.LauncherPower() != 2 {
		t.Errorf("Expected power 2 after one charge, got %d", sim.LauncherPower())
	}

	sim.SetLauncherPower(MaxLauncherPower + 5)
	if sim.LauncherPower() != MaxLauncherPower {
		t.Errorf("Expected power clamped to %d, got %d", MaxLauncherPower, sim.LauncherPower())
	}
	sim.ChargeLauncher()
	if sim.LauncherPower() != 1 {
		t.Errorf("Expected charge past max to wrap to 1, got %d", sim.LauncherPower())
	}
}

func TestNewSimulationFailsFast(t *testing.T) {
	cfg := ClassicConfig()
	cfg.Ball.Radius = 0

	_, err := NewSimulation(cfg, NewRandomizer(1))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidConfig wrapping ErrInvalidGeometry, got %v", err)
	}

	if _, err := NewSimulation(ClassicConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for nil randomizer, got %v", err)
	}
}

func TestSimulationFrame(t *testing.T) {
	sim := newClassicSim(t, nil)
	sim.SetPhase(PhasePlaying)
	sim.Step(Controls{})

	f := sim.Frame()

	if f.Ball.X != sim.Ball.Pos.X || f.Ball.Y != sim.Ball.Pos.Y || f.Ball.R != 4 {
		t.Errorf("Frame ball %+v does not match simulation %+v", f.Ball, sim.Ball)
	}
	if f.Flippers[0].Side != core.SideLeft || f.Flippers[1].Side != core.SideRight {
		t.Errorf("Expected left then right segments, got %+v", f.Flippers)
	}
	if f.Flippers[1].Tip != sim.Right.Tip() {
		t.Errorf("Expected right tip %v, got %v", sim.Right.Tip(), f.Flippers[1].Tip)
	}
	if f.Phase != PhasePlaying || f.Tick != 1 {
		t.Errorf("Expected PLAYING at tick 1, got %s at %d", f.Phase, f.Tick)
	}
}
