package engine

import (
	"context"

	"github.com/lixenwraith/corridor/world"
)

// RunHeadless plays a session without a display
// Input comes from opts.Feed, defaulting to an Autopilot; the run stops when every marker is solved,
// MaxTicks is reached or ctx is cancelled
func RunHeadless(ctx context.Context, s *world.Session, opts Options) error {
	opts.Tuning = opts.Tuning.withDefaults()
	if opts.Feed == nil {
		opts.Feed = NewAutopilot(opts.Tuning.Speed).Feed
	}
	opts.StopOnComplete = true
	return NewLoop(s, nil, opts).Run(ctx)
}
