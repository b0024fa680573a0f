package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/vmath"
)

// Variant names
const (
	VariantClassic = "classic" // 128x256, flippers snap between angles
	VariantArcade  = "arcade"  // 160x240, animated flippers, launcher lane
)

// Shared tuning
const (
	defaultBallRadius   = 4
	defaultGravity      = 0.2
	defaultFlipperWidth = 4
	defaultSpawnMargin  = 40
	defaultSpawnY       = 40
	defaultSpawnVY      = 1.0
	defaultSpawnSpread  = 1.0
	defaultTPS          = 60
	defaultHoldMs       = 250
)

// Variants lists preset names in display order
var Variants = []string{VariantClassic, VariantArcade}

// Preset returns the named variant configuration
func Preset(name string) (Config, error) {
	switch name {
	case VariantClassic:
		return ClassicConfig(), nil
	case VariantArcade:
		return ArcadeConfig(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

func baseConfig() Config {
	return Config{
		Ball: BallConfig{
			Radius:      defaultBallRadius,
			Gravity:     defaultGravity,
			Restitution: physics.DefaultWallProfile.Restitution,
			SpawnMargin: defaultSpawnMargin,
			SpawnY:      defaultSpawnY,
			SpawnVY:     defaultSpawnVY,
			SpawnSpread: defaultSpawnSpread,
		},
		Flippers: FlippersConfig{
			Width:     defaultFlipperWidth,
			Proximity: ProximityMidpoint,
		},
		Input: InputConfig{
			Left:   "z",
			Right:  "x",
			HoldMs: defaultHoldMs,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Loop: LoopConfig{
			TPS:     defaultTPS,
			Physics: true,
		},
	}
}

// ClassicConfig is the 128x256 table: flippers aimed 10 units up over 30 across,
// rotated down 30 degrees at rest, snapping to the aim line when active
func ClassicConfig() Config {
	cfg := baseConfig()
	cfg.Variant = VariantClassic
	cfg.Arena = ArenaConfig{Width: 128, Height: 256}

	leftRest := math.Atan2(-10, 30) + vmath.Deg(30)
	rightRest := math.Atan2(-10, -30) - vmath.Deg(30)

	cfg.Flippers.Length = 30
	cfg.Flippers.Damping = physics.DampingDiscrete
	cfg.Flippers.Left = FlipperConfig{
		Pivot:       [2]float64{28, 240},
		RestAngle:   leftRest,
		ActiveAngle: leftRest - vmath.Deg(30),
	}
	cfg.Flippers.Right = FlipperConfig{
		Pivot:       [2]float64{100, 240},
		RestAngle:   rightRest,
		ActiveAngle: rightRest + vmath.Deg(30),
	}
	return cfg
}

// ArcadeConfig is the 160x240 table with damped flipper animation and a launcher lane
func ArcadeConfig() Config {
	cfg := baseConfig()
	cfg.Variant = VariantArcade
	cfg.Arena = ArenaConfig{Width: 160, Height: 240, LauncherLane: true}

	const rest, active = 0.7, -0.3

	cfg.Flippers.Length = 25
	cfg.Flippers.Damping = physics.DampingAnimated
	cfg.Flippers.Left = FlipperConfig{
		Pivot:       [2]float64{40, 200},
		RestAngle:   rest,
		ActiveAngle: active,
	}
	cfg.Flippers.Right = FlipperConfig{
		Pivot:       [2]float64{cfg.Arena.Width - 40, 200},
		RestAngle:   vmath.MirrorAngle(rest),
		ActiveAngle: vmath.MirrorAngle(active),
	}
	return cfg
}
