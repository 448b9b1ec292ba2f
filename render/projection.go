package render

import "github.com/lixenwraith/corridor/vmath"

const (
	hudRows   = 2
	focalLen  = 1.0
	nearPlane = 0.1
	viewScale = 0.5 // Fraction of view height covered by one unit at focal distance
)

// CameraOffset places the eye slightly above and behind the player
var CameraOffset = vmath.Vec3F{X: 0, Y: 0.5, Z: 2}

// Projected is a world point mapped to screen space
type Projected struct {
	X, Y  float64 // Cell coordinates, Y grows downward
	Depth float64 // Distance along the view axis
	Scale float64 // Cells per world unit vertically at this depth
}

// Eye returns the camera position that follows the player
func Eye(player vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(player, CameraOffset)
}

// Project maps p into a screenW by screenH terminal, camera at eye looking down -Z
// Returns false for points behind the near plane
func Project(p, eye vmath.Vec3F, screenW, screenH int) (Projected, bool) {
	rel := vmath.V3FSub(p, eye)
	depth := -rel.Z
	if depth < nearPlane {
		return Projected{}, false
	}
	invZ := focalLen / depth

	viewH := float64(max(screenH-hudRows, 1))
	scale := viewH * viewScale

	return Projected{
		X:     float64(screenW)/2.0 + rel.X*invZ*scale*2.0, // 2x for terminal cell aspect 1:2
		Y:     viewH/2.0 - rel.Y*invZ*scale,
		Depth: depth,
		Scale: invZ * scale,
	}, true
}
