package world

import "github.com/lixenwraith/corridor/vmath"

const (
	// PlayerHeight is the eye height of the player above the floor
	PlayerHeight = 1.5
	// MarkerHeight is the centre height of a unit marker cube resting on the floor
	MarkerHeight = 0.5

	// Corridor floor extents, centred on the origin
	CorridorWidth  = 5.0
	CorridorLength = 50.0
)

// Layout is the fixed start state of a session
type Layout struct {
	PlayerStart vmath.Vec3F
	Markers     []vmath.Vec3F
}

// DefaultLayout is the corridor with three cubes spaced down its length
func DefaultLayout() Layout {
	return Layout{
		PlayerStart: vmath.Vec3F{X: 0, Y: PlayerHeight, Z: 8},
		Markers: []vmath.Vec3F{
			{X: -2, Y: MarkerHeight, Z: -15},
			{X: 2, Y: MarkerHeight, Z: -30},
			{X: 0, Y: MarkerHeight, Z: -45},
		},
	}
}

// FlatLayout is DefaultLayout with every position on the floor plane
// Distances become purely horizontal
func FlatLayout() Layout {
	l := DefaultLayout()
	l.PlayerStart.Y = 0
	for i := range l.Markers {
		l.Markers[i].Y = 0
	}
	return l
}
