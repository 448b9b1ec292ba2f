package window

import (
	"errors"

	"github.com/lixenwraith/corridor/vmath"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 640

	pixelsPerUnit = 10.0
	playerAnchorY = 0.8 // Player sits at this fraction of the window height

	// Held-key repeat, in window ticks
	repeatDelay    = 12
	repeatInterval = 2
)

// ErrUnsupported is returned by Run in builds without the desktop backend
var ErrUnsupported = errors.New("window: desktop backend requires cgo")

// ToScreen maps a world position to window pixels in a top-down view that follows the player
// Forward (-Z) points up the window
func ToScreen(p, player vmath.Vec3F) (float32, float32) {
	x := ScreenWidth/2.0 + (p.X-player.X)*pixelsPerUnit
	y := ScreenHeight*playerAnchorY + (p.Z-player.Z)*pixelsPerUnit
	return float32(x), float32(y)
}

// Span converts a world length to pixels
func Span(units float64) float32 {
	return float32(units * pixelsPerUnit)
}

// repeatFires reports whether a key held for d ticks produces a move this tick
func repeatFires(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
