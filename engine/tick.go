package engine

import (
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/vmath"
	"github.com/lixenwraith/corridor/world"
)

// Tick advances the session by one simulation step
//  1. Pending input is drained and applied to the player
//  2. Active markers are scanned in original order
//  3. The first marker strictly closer than the threshold is solved, even if a later one is nearer
//
// At most one marker resolves per tick. The resolved event is delivered to n (may be nil) and returned
func Tick(s *world.Session, in *input.State, n event.Notifier, t Tuning) (event.GameEvent, bool) {
	if in != nil {
		for _, dir := range in.Drain() {
			s.MovePlayer(dir, t.Speed)
		}
	}

	pos, ok := firstInRange(s, t.Threshold)
	if !ok {
		return event.GameEvent{}, false
	}

	m, ok := s.Solve(pos)
	if !ok {
		return event.GameEvent{}, false
	}

	ev := event.GameEvent{
		Type: event.EventMarkerSolved,
		Payload: event.MarkerPayload{
			Index:  m.Index,
			Solved: s.Solved(),
			Total:  s.Total(),
		},
	}
	if s.Solved() == s.Total() {
		ev.Type = event.EventAllSolved
	}

	if n != nil {
		n.Notify(ev)
	}
	return ev, true
}

// firstInRange returns the scan position of the first active marker within threshold
func firstInRange(s *world.Session, threshold float64) (int, bool) {
	player := s.Player().Position
	for i, m := range s.RemainingMarkers() {
		if vmath.V3FDist(player, m.Position) < threshold {
			return i, true
		}
	}
	return -1, false
}
