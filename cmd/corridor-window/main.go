package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/corridor/audio"
	"github.com/lixenwraith/corridor/config"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/logging"
	"github.com/lixenwraith/corridor/render"
	"github.com/lixenwraith/corridor/window"
	"github.com/lixenwraith/corridor/world"
)

func main() {
	cfg, err := config.Load(config.Flags("corridor-window"), os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "corridor-window: %v\n", err)
		os.Exit(2)
	}

	logger, logCloser, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corridor-window: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := world.NewSession(world.DefaultLayout())
	logger.Info().Str("session", session.ID()).Msg("session started")

	toasts := render.NewToasts(cfg.ToastDuration)
	notifiers := event.Fanout{toasts}

	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager(nil)
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed")
			sound = nil
		} else {
			defer sound.Cleanup()
			notifiers = append(notifiers, sound)
		}
	}

	opts := engine.Options{
		Tuning: engine.Tuning{
			TickRate:  cfg.TickRate,
			Speed:     cfg.Speed,
			Threshold: cfg.Threshold,
		},
		Notifier: notifiers,
		Logger:   &logger,
	}
	if cfg.Autopilot {
		opts.Feed = engine.NewAutopilot(cfg.Speed).Feed
	}
	loop := engine.NewLoop(session, nil, opts)

	muted := false
	err = window.Run(ctx, loop, window.Options{
		Toasts: toasts,
		Logger: &logger,
		OnAction: func(a input.Action) {
			switch a {
			case input.ActionReset:
				loop.Reset()
			case input.ActionToggleMute:
				muted = !muted
				if sound != nil {
					sound.SetMuted(muted)
				}
			}
		},
		Muted: func() bool { return muted },
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "corridor-window: %v\n", err)
		os.Exit(1)
	}
}
