package render

import (
	"github.com/lixenwraith/corridor/vmath"
	"github.com/lixenwraith/corridor/world"
)

// View is a read-only snapshot of everything a frame draws
type View struct {
	Player  vmath.Vec3F
	Markers []world.Marker
	Solved  int
	Total   int
	Toasts  []string
	Muted   bool
}

// ViewOf snapshots the session; toasts and mute state are filled in by the caller
func ViewOf(s *world.Session) View {
	return View{
		Player:  s.Player().Position,
		Markers: s.Markers(),
		Solved:  s.Solved(),
		Total:   s.Total(),
	}
}

// Complete reports whether every marker in the view is solved
func (v View) Complete() bool { return v.Total > 0 && v.Solved == v.Total }
