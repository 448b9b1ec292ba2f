package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/corridor/event"
)

// SoundManager plays the game's sound cues through the beep speaker
// An uninitialised manager is a silent no-op, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// play hands a finished streamer to the output, replaced in tests
	play func(beep.Streamer)
}

// NewSoundManager creates a sound manager, nil cfg selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.play = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.play = nil
	sm.initialized = false
}

// SetMuted silences or restores cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new one
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlaySolved plays the single-marker chime
func (sm *SoundManager) PlaySolved() {
	sm.Play(SoundSolved)
}

// PlayComplete plays the all-solved fanfare
func (sm *SoundManager) PlayComplete() {
	sm.Play(SoundComplete)
}

// Play queues a sound effect unless muted or uninitialised
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.play == nil || sm.muted {
		return
	}

	if s := GetSoundEffect(soundType, sm.cfg); s != nil {
		sm.play(s)
	}
}

// Notify maps game events to cues
func (sm *SoundManager) Notify(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMarkerSolved:
		sm.PlaySolved()
	case event.EventAllSolved:
		sm.PlayComplete()
	}
}

var _ event.Notifier = (*SoundManager)(nil)
