package world

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/vmath"
)

// Player is the controlled viewpoint
type Player struct {
	Position vmath.Vec3F
}

// Marker is a fixed target that is solved by walking close to it
type Marker struct {
	Index    int // 1-based position in the original layout
	Position vmath.Vec3F
	Solved   bool
}

// Session owns player and marker state for one run
// Single writer: the game loop. Not safe for concurrent use
type Session struct {
	id      string
	layout  Layout
	player  Player
	markers []Marker // all markers in layout order
	active  []int    // indices into markers, ascending
	solved  int
}

// NewSession builds a session at the layout's start state
func NewSession(layout Layout) *Session {
	s := &Session{layout: layout}
	s.Reset()
	return s
}

// Reset restores the start state and assigns a fresh session ID
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.player = Player{Position: s.layout.PlayerStart}
	s.markers = make([]Marker, len(s.layout.Markers))
	s.active = make([]int, len(s.layout.Markers))
	for i, pos := range s.layout.Markers {
		s.markers[i] = Marker{Index: i + 1, Position: pos}
		s.active[i] = i
	}
	s.solved = 0
}

func (s *Session) ID() string { return s.id }

func (s *Session) Player() Player { return s.player }

// Solved returns the number of solved markers
func (s *Session) Solved() int { return s.solved }

// Total returns the number of markers at session start
func (s *Session) Total() int { return len(s.markers) }

// Complete reports whether every marker is solved
func (s *Session) Complete() bool { return s.solved == len(s.markers) }

// MovePlayer steps the player along the floor plane by speed in dir
// No bounds checking; DirNone and unknown directions are ignored
func (s *Session) MovePlayer(dir input.Direction, speed float64) {
	dx, dz := dir.Delta()
	s.player.Position.X += dx * speed
	s.player.Position.Z += dz * speed
}

// RemainingMarkers returns a copy of the active set ordered by original index
func (s *Session) RemainingMarkers() []Marker {
	out := make([]Marker, len(s.active))
	for i, idx := range s.active {
		out[i] = s.markers[idx]
	}
	return out
}

// Markers returns a copy of every marker, solved ones included, in layout order
func (s *Session) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Solve resolves the active marker at scan position pos
// The marker is removed from the active set before returning, so it can never be scanned again
// Out-of-range positions return ok=false without effect
func (s *Session) Solve(pos int) (Marker, bool) {
	if pos < 0 || pos >= len(s.active) {
		return Marker{}, false
	}
	idx := s.active[pos]
	s.active = append(s.active[:pos], s.active[pos+1:]...)
	s.markers[idx].Solved = true
	s.solved++
	return s.markers[idx], true
}
