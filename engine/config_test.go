package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/physics"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range Variants {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset %q failed validation: %v", name, err)
		}
		if cfg.Variant != name {
			t.Errorf("Expected variant %q, got %q", name, cfg.Variant)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("pachinko"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestArcadePresetMirrorsRightFlipper(t *testing.T) {
	cfg := ArcadeConfig()

	if cfg.Flippers.Right.Pivot != [2]float64{120, 200} {
		t.Errorf("Expected right pivot (120, 200), got %v", cfg.Flippers.Right.Pivot)
	}
	if cfg.Flippers.Damping != physics.DampingAnimated {
		t.Errorf("Expected animated damping, got %f", cfg.Flippers.Damping)
	}
	if !cfg.Arena.LauncherLane {
		t.Error("Expected launcher lane on arcade table")
	}
}

func TestDecodeConfigOverlay(t *testing.T) {
	text := `
[ball]
gravity = 0.5

[flippers]
proximity = "segment"

[flippers.left]
pivot = [30, 230]
`
	cfg, err := DecodeConfig(text, ClassicConfig())
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}

	if cfg.Ball.Gravity != 0.5 {
		t.Errorf("Expected gravity 0.5, got %f", cfg.Ball.Gravity)
	}
	if cfg.Ball.Radius != 4 {
		t.Errorf("Expected radius kept at 4, got %f", cfg.Ball.Radius)
	}
	if cfg.Flippers.Left.Pivot != [2]float64{30, 230} {
		t.Errorf("Expected left pivot (30, 230), got %v", cfg.Flippers.Left.Pivot)
	}
	if cfg.Flippers.Right.Pivot != [2]float64{100, 240} {
		t.Errorf("Expected right pivot kept at (100, 240), got %v", cfg.Flippers.Right.Pivot)
	}
	if cfg.Flippers.Proximity != ProximitySegment {
		t.Errorf("Expected segment proximity, got %q", cfg.Flippers.Proximity)
	}
}

func TestDecodeConfigRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeConfig("[ball]\nbounciness = 2\n", ClassicConfig())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unknown key, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		geometry bool // also wraps core.ErrInvalidGeometry
	}{
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, true},
		{"reversed walls", func(c *Config) { c.Arena.Width = 8 }, true},
		{"zero height", func(c *Config) { c.Arena.Height = 0 }, true},
		{"zero flipper length", func(c *Config) { c.Flippers.Length = 0 }, true},
		{"negative flipper width", func(c *Config) { c.Flippers.Width = -1 }, false},
		{"zero damping", func(c *Config) { c.Flippers.Damping = 0 }, false},
		{"damping above one", func(c *Config) { c.Flippers.Damping = 1.5 }, false},
		{"empty spawn range", func(c *Config) { c.Arena.Width = 70 }, false},
		{"zero tps", func(c *Config) { c.Loop.TPS = 0 }, false},
		{"unknown proximity", func(c *Config) { c.Flippers.Proximity = "bogus" }, false},
		{"negative hold", func(c *Config) { c.Input.HoldMs = -5 }, false},
		{"loud audio", func(c *Config) { c.Audio.Volume = 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ClassicConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if tt.geometry && !errors.Is(err, core.ErrInvalidGeometry) {
				t.Errorf("Expected ErrInvalidGeometry in chain, got %v", err)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Variant != VariantClassic || cfg.Arena.Width != 128 || cfg.Arena.Height != 256 {
		t.Errorf("Expected classic 128x256 default, got %s %gx%g", cfg.Variant, cfg.Arena.Width, cfg.Arena.Height)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.toml")
	text := `variant = "arcade"

[loop]
tps = 30

[input]
left = "a"
`
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Variant != VariantArcade || cfg.Arena.Width != 160 {
		t.Errorf("Expected arcade table from file, got %s width %g", cfg.Variant, cfg.Arena.Width)
	}
	if cfg.Loop.TPS != 30 || cfg.Input.Left != "a" || cfg.Input.Right != "x" {
		t.Errorf("Expected overlay tps=30 left=a right=x, got %d %q %q", cfg.Loop.TPS, cfg.Input.Left, cfg.Input.Right)
	}

	// Explicit variant wins over the file's key
	cfg, err = LoadConfig(path, VariantClassic)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Variant != VariantClassic || cfg.Arena.Width != 128 || cfg.Loop.TPS != 30 {
		t.Errorf("Expected classic with overlay, got %s width %g tps %d", cfg.Variant, cfg.Arena.Width, cfg.Loop.TPS)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestTickInterval(t *testing.T) {
	cfg := ClassicConfig()
	if got := cfg.Loop.TickInterval(); got.Milliseconds() != 16 {
		t.Errorf("Expected ~16ms at 60 TPS, got %v", got)
	}
}

func TestLoadShippedArcadeConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "configs", "arcade.toml"), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Variant != VariantArcade || !cfg.Arena.LauncherLane {
		t.Errorf("Expected arcade table with lane, got %s lane=%v", cfg.Variant, cfg.Arena.LauncherLane)
	}
	if cfg.Flippers.Proximity != ProximitySegment {
		t.Errorf("Expected segment proximity, got %q", cfg.Flippers.Proximity)
	}
	if cfg.Input.HoldWindow() != 180*time.Millisecond {
		t.Errorf("Expected 180ms hold window, got %v", cfg.Input.HoldWindow())
	}
}
