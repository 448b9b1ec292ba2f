//go:build !cgo

package window

import (
	"context"

	"github.com/lixenwraith/corridor/engine"
)

// Run is unavailable without cgo
func Run(ctx context.Context, loop *engine.Loop, opts Options) error {
	return ErrUnsupported
}
