package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/world"
)

// Options configures a Loop
type Options struct {
	Tuning   Tuning
	Notifier event.Notifier
	Logger   *zerolog.Logger // nil disables logging

	// MaxTicks stops Run after this many ticks, 0 runs until cancelled
	MaxTicks uint64
	// StopOnComplete stops Run once every marker is solved
	StopOnComplete bool

	// Feed runs before every tick and may press directions (e.g. Autopilot.Feed)
	Feed func(s *world.Session, in *input.State)
	// Frame runs after every tick of Run (e.g. a renderer); an error stops Run
	Frame func(s *world.Session) error
}

// Loop drives the interaction loop for one session
// All state mutation happens on the goroutine calling Step or Run
type Loop struct {
	session *world.Session
	input   *input.State
	opts    Options
	log     zerolog.Logger
	frame   uint64
}

func NewLoop(s *world.Session, in *input.State, opts Options) *Loop {
	if in == nil {
		in = &input.State{}
	}
	opts.Tuning = opts.Tuning.withDefaults()

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "loop").Logger()
	}

	return &Loop{
		session: s,
		input:   in,
		opts:    opts,
		log:     log,
	}
}

func (l *Loop) Session() *world.Session { return l.session }

// Input returns the pending-input state read by every tick
func (l *Loop) Input() *input.State { return l.input }

func (l *Loop) Tuning() Tuning { return l.opts.Tuning }

// Frame returns the number of ticks run so far
func (l *Loop) Frame() uint64 { return l.frame }

// Reset restarts the session from its layout and drops pending input
func (l *Loop) Reset() {
	l.session.Reset()
	l.input.Clear()
	l.log.Info().Str("session", l.session.ID()).Uint64("frame", l.frame).Msg("session reset")
}

// Step runs one tick: feed, apply input, resolve
func (l *Loop) Step() (event.GameEvent, bool) {
	l.frame++
	if l.opts.Feed != nil {
		l.opts.Feed(l.session, l.input)
	}

	ev, ok := Tick(l.session, l.input, l.opts.Notifier, l.opts.Tuning)
	if ok {
		p := l.session.Player().Position
		l.log.Info().
			Str("session", l.session.ID()).
			Uint64("frame", l.frame).
			Str("event", ev.Type.String()).
			Int("marker", ev.Payload.Index).
			Int("solved", ev.Payload.Solved).
			Int("total", ev.Payload.Total).
			Float64("x", p.X).
			Float64("z", p.Z).
			Msg(ev.Message())
	}
	return ev, ok
}

// Run ticks at the configured rate until ctx is cancelled, a stop condition is met, or Frame fails
// Returns ctx.Err() on cancellation, nil on a normal stop
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.Tuning.Interval())
	defer ticker.Stop()

	l.log.Debug().
		Str("session", l.session.ID()).
		Int("tick_rate", l.opts.Tuning.TickRate).
		Uint64("max_ticks", l.opts.MaxTicks).
		Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Step()

			if l.opts.Frame != nil {
				if err := l.opts.Frame(l.session); err != nil {
					return err
				}
			}

			if l.opts.StopOnComplete && l.session.Complete() {
				l.log.Debug().Uint64("frame", l.frame).Msg("all markers solved, loop stopped")
				return nil
			}
			if l.opts.MaxTicks > 0 && l.frame >= l.opts.MaxTicks {
				l.log.Debug().Uint64("frame", l.frame).Msg("tick limit reached, loop stopped")
				return nil
			}
		}
	}
}
