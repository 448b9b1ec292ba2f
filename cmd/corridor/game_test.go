package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/render"
	"github.com/lixenwraith/corridor/world"
)

func newTestGame(t *testing.T, opts engine.Options) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	toasts := render.NewToasts(time.Second)
	if opts.Notifier == nil {
		opts.Notifier = toasts
	}
	loop := engine.NewLoop(world.NewSession(world.DefaultLayout()), nil, opts)
	return NewGame(screen, loop, nil, toasts, nil, zerolog.Nop()), screen
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestGame_MoveKeyAppliesOnNextTick(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{})

	require.True(t, g.handleInput(runeKey('a')))
	assert.Equal(t, 0.0, g.loop.Session().Player().Position.X, "input waits for the tick")

	g.tick()
	assert.InDelta(t, -0.3, g.loop.Session().Player().Position.X, 1e-9)
}

func TestGame_ArrowKeys(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{})

	g.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	g.tick()
	assert.InDelta(t, 7.7, g.loop.Session().Player().Position.Z, 1e-9)
}

func TestGame_QuitKeys(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{})

	assert.False(t, g.handleInput(runeKey('q')))
	assert.False(t, g.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, g.handleInput(runeKey('x')), "unbound keys are ignored")
}

func TestGame_Reset(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{})
	firstID := g.loop.Session().ID()

	g.handleInput(runeKey('d'))
	g.tick()
	g.toasts.Push("stale", time.Now())
	g.handleInput(runeKey('w'))

	g.handleInput(runeKey('r'))

	s := g.loop.Session()
	assert.Equal(t, world.DefaultLayout().PlayerStart, s.Player().Position)
	assert.NotEqual(t, firstID, s.ID())
	assert.False(t, g.loop.Input().Pending(), "pending input dropped on reset")
	assert.Zero(t, g.toasts.Len())
}

func TestGame_ToggleMuteShowsInHUD(t *testing.T) {
	g, screen := newTestGame(t, engine.Options{})

	g.handleInput(runeKey('m'))
	g.draw()
	assert.Contains(t, screenText(screen), "[MUTED]")

	g.handleInput(runeKey('m'))
	g.draw()
	assert.NotContains(t, screenText(screen), "[MUTED]")
}

func TestGame_SolveShowsToast(t *testing.T) {
	g, screen := newTestGame(t, engine.Options{Feed: engine.NewAutopilot(engine.DefaultSpeed).Feed})

	for i := 0; i < 1000 && g.loop.Session().Solved() == 0; i++ {
		g.tick()
	}
	require.Equal(t, 1, g.loop.Session().Solved())

	text := screenText(screen)
	assert.Contains(t, text, "Puzzle 1 solved! Keep going.")
	assert.Contains(t, text, "Solved 1/3")
}

func TestGame_Resize(t *testing.T) {
	g, screen := newTestGame(t, engine.Options{})

	screen.SetSize(60, 12)
	assert.True(t, g.handleInput(tcell.NewEventResize(60, 12)))

	w, h := g.renderer.Size()
	assert.Equal(t, 60, w)
	assert.Equal(t, 12, h)
	assert.Contains(t, screenText(screen), "Solved 0/3")
}

func TestGame_RunStopsOnCancel(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}

func TestGame_RunStopsAtTickLimit(t *testing.T) {
	g, _ := newTestGame(t, engine.Options{Tuning: engine.Tuning{TickRate: 500}})
	g.maxTicks = 3

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, g.Run(ctx))
	assert.Equal(t, uint64(3), g.loop.Frame())
}

func TestLoadKeys(t *testing.T) {
	keys, err := loadKeys("")
	require.NoError(t, err)
	assert.Equal(t, input.DirForward, keys.Lookup(runeKey('w')).Dir)

	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("forward: [i]\nnone: [w]\n"), 0644))

	keys, err = loadKeys(path)
	require.NoError(t, err)
	assert.Equal(t, input.DirForward, keys.Lookup(runeKey('i')).Dir)
	assert.Equal(t, input.ActionNone, keys.Lookup(runeKey('w')).Action)
	assert.Equal(t, input.DirBack, keys.Lookup(runeKey('s')).Dir, "unmentioned bindings kept")

	_, err = loadKeys(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
