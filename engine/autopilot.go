package engine

import (
	"math"

	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/world"
)

// Autopilot walks the player to each active marker in scan order
// Lines up on X first, then walks along Z, one directional command per tick
type Autopilot struct {
	tolerance float64
}

// NewAutopilot returns an autopilot for the given step size
// An axis counts as aligned within half a step, so the walker never oscillates around a target
func NewAutopilot(speed float64) *Autopilot {
	return &Autopilot{tolerance: speed / 2}
}

// Next returns the direction to press this tick, DirNone when there is nothing left to reach
func (a *Autopilot) Next(s *world.Session) input.Direction {
	remaining := s.RemainingMarkers()
	if len(remaining) == 0 {
		return input.DirNone
	}
	target := remaining[0].Position
	p := s.Player().Position

	if dx := target.X - p.X; math.Abs(dx) > a.tolerance {
		if dx > 0 {
			return input.DirRight
		}
		return input.DirLeft
	}
	if dz := target.Z - p.Z; math.Abs(dz) > a.tolerance {
		if dz < 0 {
			return input.DirForward
		}
		return input.DirBack
	}
	return input.DirNone
}

// Feed presses the next direction into in
func (a *Autopilot) Feed(s *world.Session, in *input.State) {
	if d := a.Next(s); d != input.DirNone {
		in.Press(d)
	}
}
