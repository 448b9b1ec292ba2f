package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Printable keys, stored lowercase
	Runes map[rune]KeyEntry

	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings: WASD and arrows to move
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'w': {ActionMove, DirForward},
			's': {ActionMove, DirBack},
			'a': {ActionMove, DirLeft},
			'd': {ActionMove, DirRight},
			'q': {ActionQuit, DirNone},
			'r': {ActionReset, DirNone},
			'm': {ActionToggleMute, DirNone},
		},
		Keys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {ActionMove, DirForward},
			tcell.KeyDown:   {ActionMove, DirBack},
			tcell.KeyLeft:   {ActionMove, DirLeft},
			tcell.KeyRight:  {ActionMove, DirRight},
			tcell.KeyEscape: {ActionQuit, DirNone},
			tcell.KeyCtrlC:  {ActionQuit, DirNone},
		},
	}
}

// Lookup resolves a key event to its binding
// Runes are matched case-insensitively so Shift or Caps Lock do not change bindings
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev == nil {
		return KeyEntry{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]KeyEntry, len(kt.Runes)),
		Keys:  make(map[tcell.Key]KeyEntry, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.Action == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v.Action == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}

	return result
}
