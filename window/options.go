package window

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/corridor/input"
	"github.com/lixenwraith/corridor/render"
)

// Options configures the desktop window
type Options struct {
	Title  string
	Toasts *render.Toasts // Banner source, nil shows none
	Logger *zerolog.Logger

	// OnAction handles non-movement actions other than quit (reset, mute)
	OnAction func(a input.Action)
	// Muted reports the audio state for the status line
	Muted func() bool
}
