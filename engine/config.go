package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/physics"
)

// Sentinel errors
var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Proximity test names accepted in [flippers] proximity
const (
	ProximityMidpoint = "midpoint"
	ProximitySegment  = "segment"
)

// Config is the full simulation and front-end configuration
type Config struct {
	Variant  string         `toml:"variant"`
	Arena    ArenaConfig    `toml:"arena"`
	Ball     BallConfig     `toml:"ball"`
	Flippers FlippersConfig `toml:"flippers"`
	Input    InputConfig    `toml:"input"`
	Audio    AudioConfig    `toml:"audio"`
	Loop     LoopConfig     `toml:"loop"`
}

type ArenaConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	LauncherLane bool    `toml:"launcher_lane"` // Decoration only, no collision
}

type BallConfig struct {
	Radius      float64 `toml:"radius"`
	Gravity     float64 `toml:"gravity"`
	Restitution float64 `toml:"restitution"`

	// Respawn rule: x in [SpawnMargin, width-SpawnMargin], y = SpawnY,
	// vx in [-SpawnSpread, SpawnSpread], vy = SpawnVY
	SpawnMargin int     `toml:"spawn_margin"`
	SpawnY      float64 `toml:"spawn_y"`
	SpawnVY     float64 `toml:"spawn_vy"`
	SpawnSpread float64 `toml:"spawn_spread"`
}

type FlipperConfig struct {
	Pivot       [2]float64 `toml:"pivot"`
	RestAngle   float64    `toml:"rest_angle"`
	ActiveAngle float64    `toml:"active_angle"`
}

type FlippersConfig struct {
	Length    float64       `toml:"length"`
	Width     float64       `toml:"width"`
	Damping   float64       `toml:"damping"`
	Proximity string        `toml:"proximity"`
	Left      FlipperConfig `toml:"left"`
	Right     FlipperConfig `toml:"right"`
}

type InputConfig struct {
	Left   string `toml:"left"`
	Right  string `toml:"right"`
	HoldMs int    `toml:"hold_ms"` // Terminal only: key-repeat gap treated as still held
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoopConfig struct {
	TPS     int  `toml:"tps"`
	Physics bool `toml:"physics"` // false runs flippers only
}

// HoldWindow returns the configured terminal key hold window
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

// TickInterval returns the fixed timestep
func (c LoopConfig) TickInterval() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

// LoadConfig resolves a variant preset and overlays the TOML file at path onto it
// Variant precedence: explicit argument, then the file's variant key, then classic
func LoadConfig(path, variant string) (Config, error) {
	var text string
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		text = string(raw)

		var peek struct {
			Variant string `toml:"variant"`
		}
		if _, err := toml.Decode(text, &peek); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if variant == "" {
			variant = peek.Variant
		}
	}

	if variant == "" {
		variant = VariantClassic
	}
	base, err := Preset(variant)
	if err != nil {
		return Config{}, err
	}

	cfg, err := DecodeConfig(text, base)
	if err != nil {
		return Config{}, err
	}
	cfg.Variant = variant
	return cfg, nil
}

// DecodeConfig overlays TOML text onto base; keys absent from text keep base values
// Unknown keys are rejected
func DecodeConfig(text string, base Config) (Config, error) {
	md, err := toml.Decode(text, &base)
	if err != nil {
		return Config{}, fmt.Errorf("config decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := base.Validate(); err != nil {
		return Config{}, err
	}
	return base, nil
}

// Validate checks geometric sanity and tuning ranges
func (c Config) Validate() error {
	ball := core.Ball{Radius: c.Ball.Radius}
	if err := ball.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	arena := core.Arena{Width: c.Arena.Width, Height: c.Arena.Height}
	if err := arena.Validate(c.Ball.Radius); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		f := core.Flipper{Side: side, Length: c.Flippers.Length}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if c.Flippers.Width < 0 {
		return fmt.Errorf("%w: flipper width %g must not be negative", ErrInvalidConfig, c.Flippers.Width)
	}
	if c.Flippers.Damping <= 0 || c.Flippers.Damping > 1 {
		return fmt.Errorf("%w: damping %g outside (0, 1]", ErrInvalidConfig, c.Flippers.Damping)
	}
	if _, err := proximityByName(c.Flippers.Proximity); err != nil {
		return err
	}

	if c.Ball.Restitution < 0 {
		return fmt.Errorf("%w: restitution %g must not be negative", ErrInvalidConfig, c.Ball.Restitution)
	}
	if c.Ball.SpawnMargin < 0 || int(c.Arena.Width)-c.Ball.SpawnMargin < c.Ball.SpawnMargin {
		return fmt.Errorf("%w: spawn range [%d, %d] is empty",
			ErrInvalidConfig, c.Ball.SpawnMargin, int(c.Arena.Width)-c.Ball.SpawnMargin)
	}
	if c.Ball.SpawnSpread < 0 {
		return fmt.Errorf("%w: spawn spread %g must not be negative", ErrInvalidConfig, c.Ball.SpawnSpread)
	}

	if c.Input.HoldMs < 0 {
		return fmt.Errorf("%w: hold_ms %d must not be negative", ErrInvalidConfig, c.Input.HoldMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %g outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Loop.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.Loop.TPS)
	}
	return nil
}

func proximityByName(name string) (physics.Proximity, error) {
	switch name {
	case "", ProximityMidpoint:
		return physics.MidpointProximity{}, nil
	case ProximitySegment:
		return physics.SegmentProximity{}, nil
	default:
		return nil, fmt.Errorf("%w: proximity %q", ErrInvalidConfig, name)
	}
}
