package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// Chime timing
const (
	chimeDuration         = 500 * time.Millisecond
	chimeAttack           = 5 * time.Millisecond
	chimeFundamentalDecay = 450 * time.Millisecond
	chimeOvertoneDecay    = 180 * time.Millisecond
)

// Fanfare timing
const (
	fanfareNoteDuration = 120 * time.Millisecond
	fanfareLastDuration = 600 * time.Millisecond
	fanfareAttack       = 5 * time.Millisecond
	fanfareRelease      = 60 * time.Millisecond
	fanfareLastRelease  = 450 * time.Millisecond
)

// C major arpeggio, C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
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

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChimeSound is a bell-like ding for a solved marker
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, chimeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, chimeDuration, chimeAttack, chimeFundamentalDecay, rate)

	// Overtone (octave up)
	over := NewOscillator(1760.0, chimeDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, chimeDuration, chimeAttack, chimeOvertoneDecay, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, cfg.volume(SoundSolved))
}

// CreateFanfareSound is a rising arpeggio for clearing the corridor
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		dur, rel := fanfareNoteDuration, fanfareRelease
		if i == len(fanfareNotes)-1 {
			dur, rel = fanfareLastDuration, fanfareLastRelease
		}
		osc := NewOscillator(freq, dur, WaveTriangle, rate)
		notes = append(notes, NewEnvelope(osc, dur, fanfareAttack, rel, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.volume(SoundComplete))
}

// GetSoundEffect returns the streamer for a sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSolved:
		return CreateChimeSound(cfg)
	case SoundComplete:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}

// soundLength is the playback length of a sound type in samples
func soundLength(soundType SoundType, rate beep.SampleRate) int {
	switch soundType {
	case SoundSolved:
		return rate.N(chimeDuration)
	case SoundComplete:
		return rate.N(fanfareNoteDuration)*(len(fanfareNotes)-1) + rate.N(fanfareLastDuration)
	default:
		return 0
	}
}
