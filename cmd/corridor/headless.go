package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lixenwraith/corridor/engine"
	"github.com/lixenwraith/corridor/event"
	"github.com/lixenwraith/corridor/world"
)

// runHeadless plays the session with the autopilot and prints every notification to w
func runHeadless(ctx context.Context, w io.Writer, s *world.Session, opts engine.Options) error {
	printer := event.NotifierFunc(func(ev event.GameEvent) {
		fmt.Fprintln(w, ev.Message())
	})
	opts.Notifier = event.Fanout{opts.Notifier, printer}

	if err := engine.RunHeadless(ctx, s, opts); err != nil {
		return err
	}

	fmt.Fprintf(w, "Solved %d/%d\n", s.Solved(), s.Total())
	return nil
}
