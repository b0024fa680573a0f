package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pinball/engine"
)

const speakerBuffer = 100 * time.Millisecond

// SoundManager plays simulation events through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates an idle manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; a cleared mixer produces silence
	sm.initialized = false
}

// Play queues a sound effect
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if st, ok := soundFor(ev); ok {
		sm.Play(st)
	}
}

func soundFor(ev engine.Event) (SoundType, bool) {
	switch ev.Kind {
	case engine.EventFlipperHit:
		return SoundFlipper, true
	case engine.EventWallBounce, engine.EventCeilingBounce:
		return SoundWall, true
	case engine.EventRespawn:
		return SoundDrain, true
	default:
		return 0, false
	}
}
