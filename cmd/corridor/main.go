package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/corridor/audio"
	"github.com/lixenwraith/corridor/config"
	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/logging"
	"github.com/lixenwraith/corridor/render"
	"github.com/lixenwraith/corridor/world"
)

func main() {
	cfg, err := config.Load(config.Flags("corridor"), os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
		os.Exit(2)
	}

	logger, logCloser, err := logging.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	keys, err := loadKeys(cfg.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := world.NewSession(world.DefaultLayout())
	logger.Info().Str("session", session.ID()).Bool("headless", cfg.Headless).Msg("session started")

	opts := engine.Options{
		Tuning: engine.Tuning{
			TickRate:  cfg.TickRate,
			Speed:     cfg.Speed,
			Threshold: cfg.Threshold,
		},
		Logger:   &logger,
		MaxTicks: cfg.Ticks,
	}

	if cfg.Headless {
		err := runHeadless(ctx, os.Stdout, session, opts)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(ctx, cfg, session, keys, opts, logger); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "corridor: %v\n", err)
		os.Exit(1)
	}
}

// loadKeys merges an optional YAML keymap over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}

func runTerminal(ctx context.Context, cfg config.Config, session *world.Session, keys *input.KeyTable, opts engine.Options, logger zerolog.Logger) error {
	// tcell reads the color mode from the environment at screen creation
	switch cfg.Color {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCORRIDOR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager(nil)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn().Err(err).Msg("audio initialization failed")
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	toasts := render.NewToasts(cfg.ToastDuration)
	notifiers := event.Fanout{toasts}
	if sound != nil {
		notifiers = append(notifiers, sound)
	}
	opts.Notifier = notifiers

	if cfg.Autopilot {
		opts.Feed = engine.NewAutopilot(opts.Tuning.Speed).Feed
	}

	loop := engine.NewLoop(session, nil, opts)
	game := NewGame(screen, loop, keys, toasts, sound, logger)
	game.maxTicks = cfg.Ticks

	return game.Run(ctx)
}
