package render

import "github.com/gdamore/tcell/v2"

// Palette, downsampled by tcell when the terminal is in 256 color mode
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorNear  = tcell.NewRGBColor(150, 150, 170) // Floor outline close to the camera
	RgbFloorFar   = tcell.NewRGBColor(60, 60, 75)    // Floor outline at the far end

	RgbMarkerActive = tcell.NewRGBColor(50, 255, 50) // Bright green cube
	RgbMarkerGlow   = tcell.NewRGBColor(0, 110, 0)   // Dim green halo around active cubes
	RgbMarkerSolved = tcell.NewRGBColor(255, 255, 255)

	RgbStatusText  = tcell.NewRGBColor(255, 255, 255)
	RgbControlText = tcell.NewRGBColor(100, 100, 110)
	RgbMutedText   = tcell.NewRGBColor(255, 200, 50)
	RgbToastText   = tcell.NewRGBColor(0, 0, 0)
	RgbToastBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
)

// floorColor fades the outline from near to far, t in [0, 1]
func floorColor(t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	nr, ng, nb := RgbFloorNear.RGB()
	fr, fg, fb := RgbFloorFar.RGB()
	lerp := func(a, b int32) int32 { return a + int32(float64(b-a)*t) }
	return tcell.NewRGBColor(lerp(nr, fr), lerp(ng, fg), lerp(nb, fb))
}
