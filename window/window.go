//go:build cgo

package window

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/vmath"
	"github.com/lixenwraith/corridor/world"
)

var (
	colorBackground   = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	colorFloor        = color.RGBA{R: 45, G: 46, B: 60, A: 255}
	colorFloorEdge    = color.RGBA{R: 150, G: 150, B: 170, A: 255}
	colorMarkerActive = color.RGBA{R: 50, G: 255, B: 50, A: 255}
	colorMarkerGlow   = color.RGBA{R: 0, G: 110, B: 0, A: 120}
	colorMarkerSolved = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPlayer       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// windowKeys mirrors the terminal default bindings
var windowKeys = map[ebiten.Key]input.KeyEntry{
	ebiten.KeyW:          {Action: input.ActionMove, Dir: input.DirForward},
	ebiten.KeyArrowUp:    {Action: input.ActionMove, Dir: input.DirForward},
	ebiten.KeyS:          {Action: input.ActionMove, Dir: input.DirBack},
	ebiten.KeyArrowDown:  {Action: input.ActionMove, Dir: input.DirBack},
	ebiten.KeyA:          {Action: input.ActionMove, Dir: input.DirLeft},
	ebiten.KeyArrowLeft:  {Action: input.ActionMove, Dir: input.DirLeft},
	ebiten.KeyD:          {Action: input.ActionMove, Dir: input.DirRight},
	ebiten.KeyArrowRight: {Action: input.ActionMove, Dir: input.DirRight},
	ebiten.KeyQ:          {Action: input.ActionQuit},
	ebiten.KeyEscape:     {Action: input.ActionQuit},
	ebiten.KeyR:          {Action: input.ActionReset},
	ebiten.KeyM:          {Action: input.ActionToggleMute},
}

// Run opens a window and drives loop from the ebiten update callback, one Step per update
// Blocks until the window closes, a quit key is pressed or ctx is cancelled
func Run(ctx context.Context, loop *engine.Loop, opts Options) error {
	if opts.Title == "" {
		opts.Title = "corridor"
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "window").Logger()
	}

	g := &game{ctx: ctx, loop: loop, opts: opts, log: log}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetTPS(loop.Tuning().TickRate)

	log.Debug().Str("session", loop.Session().ID()).Msg("window opened")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	ctx  context.Context
	loop *engine.Loop
	opts Options
	log  zerolog.Logger
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for key, entry := range windowKeys {
		switch entry.Action {
		case input.ActionMove:
			if repeatFires(inpututil.KeyPressDuration(key)) {
				g.loop.Input().Press(entry.Dir)
			}
		case input.ActionQuit:
			if inpututil.IsKeyJustPressed(key) {
				g.log.Debug().Msg("quit requested")
				return ebiten.Termination
			}
		default:
			if inpututil.IsKeyJustPressed(key) {
				if entry.Action == input.ActionReset && g.opts.Toasts != nil {
					g.opts.Toasts.Clear()
				}
				if g.opts.OnAction != nil {
					g.opts.OnAction(entry.Action)
				}
			}
		}
	}

	g.loop.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := g.loop.Session()
	player := s.Player().Position

	// Floor
	fx, fy := ToScreen(vmath.Vec3F{X: -world.CorridorWidth / 2, Z: -world.CorridorLength / 2}, player)
	vector.DrawFilledRect(screen, fx, fy, Span(world.CorridorWidth), Span(world.CorridorLength), colorFloor, false)
	vector.StrokeRect(screen, fx, fy, Span(world.CorridorWidth), Span(world.CorridorLength), 2, colorFloorEdge, false)

	// Markers
	size := Span(1)
	for _, m := range s.Markers() {
		mx, my := ToScreen(m.Position, player)
		if m.Solved {
			vector.DrawFilledRect(screen, mx-size/2, my-size/2, size, size, colorMarkerSolved, false)
			continue
		}
		vector.DrawFilledCircle(screen, mx, my, size*1.2, colorMarkerGlow, true)
		vector.DrawFilledRect(screen, mx-size/2, my-size/2, size, size, colorMarkerActive, false)
	}

	// Player
	px, py := ToScreen(player, player)
	vector.DrawFilledCircle(screen, px, py, Span(0.4), colorPlayer, true)

	status := fmt.Sprintf("Solved %d/%d  x=%.1f z=%.1f", s.Solved(), s.Total(), player.X, player.Z)
	if g.opts.Muted != nil && g.opts.Muted() {
		status += "  [MUTED]"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	ebitenutil.DebugPrintAt(screen, "WASD/arrows:move  r:reset  m:mute  q:quit", 8, ScreenHeight-20)

	if g.opts.Toasts != nil {
		for i, msg := range g.opts.Toasts.Active(time.Now()) {
			ebitenutil.DebugPrintAt(screen, msg, 8, 40+i*16)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
