package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer; lower trades latency for underrun risk
	AudioBufferDuration = 100 * time.Millisecond
	AudioMasterVolume   = 0.5
)

// Audio cues
const (
	CueImpactFreq     = 880.0
	CueImpactDuration = 50 * time.Millisecond
	CueShieldFreq     = 1320.0
	CueShieldDuration = 70 * time.Millisecond
	CueHullFreq       = 180.0
	CueHullDuration   = 120 * time.Millisecond
	CuePickupFreq     = 660.0
	CuePickupDuration = 90 * time.Millisecond
	// Pickup chime second note, a fifth above
	CuePickupFreq2     = 990.0
	CueDestroyDuration = 250 * time.Millisecond
	CueDeployFreq      = 440.0
	CueDeployDuration  = 150 * time.Millisecond

	CueAttackDuration  = 5 * time.Millisecond
	CueReleaseDuration = 30 * time.Millisecond
	// CueMaxPerFrame bounds simultaneous cues started in one frame
	CueMaxPerFrame = 4
)
