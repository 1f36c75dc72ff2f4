package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/parameter"
)

// SoundManager plays collision cues through a single speaker mixer
// Safe to use without a sound device: cues are dropped until Initialize succeeds
type SoundManager struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	frame  []Cue
	played uint64

	// accepting is set once cues have an output; live means the speaker owns the mixer
	accepting bool
	live      bool
}

func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
		frame: make([]Cue, 0, 16),
	}
}

// Initialize opens the speaker and starts the mixer
// No-op when audio is disabled or already initialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.accepting || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.accepting = true
	sm.live = true
	return nil
}

// Cleanup silences all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accepting {
		return
	}
	if sm.live {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	} else {
		sm.mixer.Clear()
	}
	sm.accepting = false
	sm.live = false
}

// PlayFrame starts the cues of one frame, deduplicated and bounded by CueMaxPerFrame
// Returns the number of cues started
func (sm *SoundManager) PlayFrame(cues []Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accepting || len(cues) == 0 {
		return 0
	}
	sm.frame = append(sm.frame[:0], cues...)
	selected := Select(sm.frame, parameter.CueMaxPerFrame)

	streams := make([]beep.Streamer, 0, len(selected))
	for _, c := range selected {
		s, err := Synth(c, sm.rate, sm.cfg.Volume)
		if err != nil {
			log.Printf("audio: %s: %v", c, err)
			continue
		}
		streams = append(streams, s)
	}
	if len(streams) == 0 {
		return 0
	}

	if sm.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Add(streams...)
	sm.played += uint64(len(streams))
	return len(streams)
}

// Play starts a single cue
func (sm *SoundManager) Play(c Cue) bool {
	return sm.PlayFrame([]Cue{c}) == 1
}

// Active returns the number of cues still sounding
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

// Played returns the number of cues started since creation
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
