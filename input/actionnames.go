package input

// Action discriminates what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionMove        // Dir carries the direction
	ActionQuit
	ActionReset
	ActionToggleMute
)

// KeyEntry describes a key binding
type KeyEntry struct {
	Action Action
	Dir    Direction
}

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"forward": {ActionMove, DirForward},
	"back":    {ActionMove, DirBack},
	"left":    {ActionMove, DirLeft},
	"right":   {ActionMove, DirRight},

	"quit":        {ActionQuit, DirNone},
	"reset":       {ActionReset, DirNone},
	"toggle_mute": {ActionToggleMute, DirNone},
}

// ActionEntry returns the binding for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
