package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/corridor/vmath"
	"github.com/lixenwraith/corridor/world"
)

const (
	floorStep    = 0.1 // World units between sampled outline points
	markerHalf   = 0.5 // Half extent of a marker cube
	glowFactor   = 1.8 // Halo extent relative to the cube
	controlsText = "w/a/s/d,arrows:move  r:reset  m:mute  q:quit"
)

// TerminalRenderer draws a View onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize picks up the current screen size, call on tcell.EventResize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

func (r *TerminalRenderer) Size() (int, int) { return r.width, r.height }

// Draw renders the entire frame
func (r *TerminalRenderer) Draw(v View) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	eye := Eye(v.Player)
	r.drawFloor(eye, defaultStyle)
	r.drawMarkers(v.Markers, eye, defaultStyle)
	r.drawToasts(v.Toasts)
	r.drawHUD(v, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// viewHeight is the number of rows above the HUD
func (r *TerminalRenderer) viewHeight() int {
	return r.height - hudRows
}

// plot writes a cell inside the 3D view area only
func (r *TerminalRenderer) plot(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.viewHeight() {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawFloor outlines the corridor edges and its far end
func (r *TerminalRenderer) drawFloor(eye vmath.Vec3F, style tcell.Style) {
	halfW := world.CorridorWidth / 2
	near := world.CorridorLength / 2
	far := -near

	shade := func(z float64) tcell.Style {
		return style.Foreground(floorColor((near - z) / world.CorridorLength))
	}

	for z := near; z >= far; z -= floorStep {
		for _, x := range []float64{-halfW, halfW} {
			if p, ok := Project(vmath.Vec3F{X: x, Y: 0, Z: z}, eye, r.width, r.height); ok {
				r.plot(int(math.Round(p.X)), int(math.Round(p.Y)), '.', shade(z))
			}
		}
	}

	for x := -halfW; x <= halfW; x += floorStep {
		if p, ok := Project(vmath.Vec3F{X: x, Y: 0, Z: far}, eye, r.width, r.height); ok {
			r.plot(int(math.Round(p.X)), int(math.Round(p.Y)), '_', shade(far))
		}
	}
}

type projectedMarker struct {
	marker world.Marker
	proj   Projected
}

// drawMarkers paints cubes far to near, active ones with a glow halo
func (r *TerminalRenderer) drawMarkers(markers []world.Marker, eye vmath.Vec3F, style tcell.Style) {
	projs := make([]projectedMarker, 0, len(markers))
	for _, m := range markers {
		if p, ok := Project(m.Position, eye, r.width, r.height); ok {
			projs = append(projs, projectedMarker{marker: m, proj: p})
		}
	}

	// Painter's algorithm: sort far to near
	sort.Slice(projs, func(i, j int) bool {
		return projs[i].proj.Depth > projs[j].proj.Depth
	})

	for _, pm := range projs {
		half := markerHalf * pm.proj.Scale
		if pm.marker.Solved {
			r.fillBox(pm.proj, half, '█', style.Foreground(RgbMarkerSolved))
			continue
		}
		r.fillBox(pm.proj, half*glowFactor, '░', style.Foreground(RgbMarkerGlow))
		r.fillBox(pm.proj, half, '█', style.Foreground(RgbMarkerActive))
	}
}

// fillBox fills a box of half-height half around p, at least one cell
func (r *TerminalRenderer) fillBox(p Projected, half float64, ch rune, style tcell.Style) {
	halfX := half * 2.0 // 2x for terminal cell aspect 1:2
	x0 := int(math.Round(p.X - halfX))
	x1 := int(math.Round(p.X + halfX))
	y0 := int(math.Round(p.Y - half))
	y1 := int(math.Round(p.Y + half))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.plot(x, y, ch, style)
		}
	}
}

// drawToasts centres notifications at the top of the view
func (r *TerminalRenderer) drawToasts(toasts []string) {
	style := tcell.StyleDefault.Foreground(RgbToastText).Background(RgbToastBg)
	for i, msg := range toasts {
		text := " " + msg + " "
		x := (r.width - len([]rune(text))) / 2
		r.writeStr(max(x, 0), 1+i, text, style)
	}
}

// drawHUD writes the status and control rows at the bottom
func (r *TerminalRenderer) drawHUD(v View, style tcell.Style) {
	statusY := r.height - 2
	controlY := r.height - 1

	status := fmt.Sprintf("Solved %d/%d", v.Solved, v.Total)
	r.writeStr(1, statusY, status, style.Foreground(RgbStatusText))

	pos := fmt.Sprintf("x=%.1f z=%.1f", v.Player.X, v.Player.Z)
	r.writeStr(len(status)+4, statusY, pos, style.Foreground(RgbControlText))

	if v.Muted {
		r.writeStr(r.width-8, statusY, "[MUTED]", style.Foreground(RgbMutedText))
	}

	r.writeStr(1, controlY, controlsText, style.Foreground(RgbControlText))
}

func (r *TerminalRenderer) writeStr(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
