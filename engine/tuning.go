package engine

import "time"

const (
	DefaultTickRate  = 60  // Hz, one tick per display refresh
	DefaultSpeed     = 0.3 // world units per directional command
	DefaultThreshold = 1.5 // strict proximity bound for solving a marker
)

// Tuning holds the numeric knobs of the interaction loop
type Tuning struct {
	TickRate  int
	Speed     float64
	Threshold float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TickRate:  DefaultTickRate,
		Speed:     DefaultSpeed,
		Threshold: DefaultThreshold,
	}
}

// Interval returns the tick period, falling back to DefaultTickRate for non-positive rates
func (t Tuning) Interval() time.Duration {
	rate := t.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// withDefaults fills non-positive fields from DefaultTuning
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.TickRate <= 0 {
		t.TickRate = d.TickRate
	}
	if t.Speed <= 0 {
		t.Speed = d.Speed
	}
	if t.Threshold <= 0 {
		t.Threshold = d.Threshold
	}
	return t
}
