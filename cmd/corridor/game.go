package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/audio"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/render"
)

// Game binds the terminal, key table and presentation to one interaction loop
type Game struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	loop     *engine.Loop
	keys     *input.KeyTable
	toasts   *render.Toasts
	sound    *audio.SoundManager // nil when audio is disabled or unavailable
	log      zerolog.Logger

	muted    bool
	maxTicks uint64
	now      func() time.Time
}

func NewGame(screen tcell.Screen, loop *engine.Loop, keys *input.KeyTable, toasts *render.Toasts, sound *audio.SoundManager, log zerolog.Logger) *Game {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if toasts == nil {
		toasts = render.NewToasts(0)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		loop:     loop,
		keys:     keys,
		toasts:   toasts,
		sound:    sound,
		log:      log.With().Str("component", "game").Logger(),
		now:      time.Now,
	}
}

// handleInput applies one terminal event, returns false to quit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := g.keys.Lookup(ev)
		switch entry.Action {
		case input.ActionMove:
			g.loop.Input().Press(entry.Dir)
		case input.ActionQuit:
			return false
		case input.ActionReset:
			g.loop.Reset()
			g.toasts.Clear()
		case input.ActionToggleMute:
			g.muted = !g.muted
			if g.sound != nil {
				g.sound.SetMuted(g.muted)
			}
			g.log.Debug().Bool("muted", g.muted).Msg("mute toggled")
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.draw()
	}

	return true
}

// tick advances the loop one step and redraws
func (g *Game) tick() {
	g.loop.Step()
	g.draw()
}

func (g *Game) draw() {
	v := render.ViewOf(g.loop.Session())
	v.Toasts = g.toasts.Active(g.now())
	v.Muted = g.muted
	g.renderer.Draw(v)
}

// Run owns the session until quit, ctx cancellation or the tick limit
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.loop.Tuning().Interval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !g.handleInput(ev) {
				g.log.Debug().Uint64("frame", g.loop.Frame()).Msg("quit requested")
				return nil
			}

		case <-ticker.C:
			g.tick()
			if g.maxTicks > 0 && g.loop.Frame() >= g.maxTicks {
				return nil
			}
		}
	}
}
