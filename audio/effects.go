package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect timings
const (
	flipperSoundDuration = 120 * time.Millisecond
	flipperSoundAttack   = 2 * time.Millisecond
	flipperSoundRelease  = 100 * time.Millisecond

	wallSoundDuration = 25 * time.Millisecond
	wallSoundAttack   = 1 * time.Millisecond
	wallSoundRelease  = 20 * time.Millisecond

	drainNoteDuration = 140 * time.Millisecond
	drainSoundAttack  = 5 * time.Millisecond
	drainSoundRelease = 60 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFlipperSound generates a bright two-partial ding
func CreateFlipperSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 with an octave overtone
	tone, err := generators.SineTone(rate, 880.0)
	if err != nil {
		tone = NewOscillator(880.0, flipperSoundDuration, WaveSine, rate)
	}
	fund := NewEnvelope(tone, flipperSoundDuration, flipperSoundAttack, flipperSoundRelease, rate)
	over := NewEnvelope(NewOscillator(1760.0, flipperSoundDuration, WaveSine, rate),
		flipperSoundDuration, flipperSoundAttack, flipperSoundRelease/2, rate)

	mixed := beep.Take(rate.N(flipperSoundDuration), beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	))

	return newVolume(mixed, cfg.EffectVolumes[SoundFlipper]*cfg.MasterVolume)
}

// CreateWallSound generates a short noise click
func CreateWallSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, wallSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, wallSoundDuration, wallSoundAttack, wallSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWall]*cfg.MasterVolume)
}

// CreateDrainSound generates a falling two-note saw buzz
func CreateDrainSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(220.0, drainNoteDuration, WaveSaw, rate),
		drainNoteDuration, drainSoundAttack, drainSoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(110.0, drainNoteDuration, WaveSaw, rate),
		drainNoteDuration, drainSoundAttack, drainSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundDrain]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundFlipper:
		return CreateFlipperSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundDrain:
		return CreateDrainSound(cfg)
	default:
		return nil
	}
}
