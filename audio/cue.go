package audio

import (
	"fmt"
	"slices"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/void-trader/gameplay"
	"github.com/lixenwraith/void-trader/parameter"
)

// Cue is a short synthesized sound effect; lower values win when cues are dropped
type Cue uint8

const (
	CueDestroyed Cue = iota
	CueHullHit
	CueShieldHit
	CueCargoHit
	CuePickup
	CueDeploy
	cueCount
)

var cueNames = [cueCount]string{"destroyed", "hull_hit", "shield_hit", "cargo_hit", "pickup", "deploy"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", uint8(c))
}

// Duration returns the playback length of c
func (c Cue) Duration() time.Duration {
	switch c {
	case CueDestroyed:
		return parameter.CueDestroyDuration
	case CueHullHit:
		return parameter.CueHullDuration
	case CueShieldHit:
		return parameter.CueShieldDuration
	case CueCargoHit:
		return parameter.CueImpactDuration
	case CuePickup:
		return 2 * parameter.CuePickupDuration
	case CueDeploy:
		return parameter.CueDeployDuration
	}
	return 0
}

// CueFor maps a gameplay notice to its sound
func CueFor(kind gameplay.NoticeKind) (Cue, bool) {
	switch kind {
	case gameplay.NoticeCargoHit:
		return CueCargoHit, true
	case gameplay.NoticeShieldHit:
		return CueShieldHit, true
	case gameplay.NoticeHullHit:
		return CueHullHit, true
	case gameplay.NoticeSectionDestroyed, gameplay.NoticeShipDestroyed:
		return CueDestroyed, true
	case gameplay.NoticePickup:
		return CuePickup, true
	case gameplay.NoticeJammerDeployed:
		return CueDeploy, true
	}
	return 0, false
}

// FromNotices collects the cues of a frame's notices, appended to dst
func FromNotices(dst []Cue, notices []gameplay.Notice) []Cue {
	for _, n := range notices {
		if c, ok := CueFor(n.Kind); ok {
			dst = append(dst, c)
		}
	}
	return dst
}

// Select deduplicates cues in place and keeps at most limit, most important first
func Select(cues []Cue, limit int) []Cue {
	slices.Sort(cues)
	cues = slices.Compact(cues)
	if limit >= 0 && len(cues) > limit {
		cues = cues[:limit]
	}
	return cues
}

// Synth builds the streamer for c at rate, scaled by a linear volume
func Synth(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	dur := c.Duration()
	attack, release := parameter.CueAttackDuration, parameter.CueReleaseDuration

	var s beep.Streamer
	switch c {
	case CueCargoHit:
		tone, err := generators.SineTone(rate, parameter.CueImpactFreq)
		if err != nil {
			return nil, err
		}
		s = newEnvelope(tone, dur, attack, release, rate)

	case CueShieldHit:
		fund, err := generators.SineTone(rate, parameter.CueShieldFreq)
		if err != nil {
			return nil, err
		}
		over, err := generators.SineTone(rate, parameter.CueShieldFreq/2)
		if err != nil {
			return nil, err
		}
		s = beep.Mix(
			newVolume(newEnvelope(fund, dur, attack, release, rate), 0.7),
			newVolume(newEnvelope(over, dur, attack, dur/2, rate), 0.3),
		)

	case CueHullHit:
		osc := newOscillator(parameter.CueHullFreq, dur, WaveSquare, rate)
		s = newEnvelope(osc, dur, attack, dur/2, rate)

	case CuePickup:
		n1, err := generators.SineTone(rate, parameter.CuePickupFreq)
		if err != nil {
			return nil, err
		}
		n2, err := generators.SineTone(rate, parameter.CuePickupFreq2)
		if err != nil {
			return nil, err
		}
		note := parameter.CuePickupDuration
		s = beep.Seq(
			newEnvelope(n1, note, attack, release, rate),
			newEnvelope(n2, note, attack, release, rate),
		)

	case CueDestroyed:
		noise := newOscillator(0, dur, WaveNoise, rate)
		s = newEnvelope(noise, dur, attack, dur*3/4, rate)

	case CueDeploy:
		osc := newOscillator(parameter.CueDeployFreq, dur, WaveSaw, rate)
		s = newEnvelope(osc, dur, dur/3, release, rate)

	default:
		return nil, fmt.Errorf("audio: unknown cue %d", uint8(c))
	}
	return newVolume(s, volume), nil
}
