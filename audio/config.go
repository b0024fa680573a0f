package audio

import "github.com/lixenwraith/pinball/engine"

const defaultSampleRate = 48000

// Config holds synthesized effect parameters
type Config struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultConfig returns audio enabled at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: [soundTypeCount]float64{
			SoundFlipper: 0.8,
			SoundWall:    0.4,
			SoundDrain:   0.7,
		},
		SampleRate: defaultSampleRate,
	}
}

// ConfigFrom applies the [audio] section of a simulation config to the defaults
func ConfigFrom(ac engine.AudioConfig) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = ac.Enabled
	cfg.MasterVolume = ac.Volume
	return cfg
}
