package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that are awkward as bare YAML scalars
var runeAliases = map[string]rune{
	"space": ' ',
	"colon": ':',
	"hash":  '#',
}

// keysByName is the reverse of tcell.KeyNames, lowercased ("up", "esc", "ctrl-c")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Format is action name → list of keys:
//
//	forward: [w, up]
//	quit: [q, esc]
//	none: [m]
//
// Returns error on unknown action names, invalid key names, duplicate keys, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Runes: make(map[rune]KeyEntry),
		Keys:  make(map[tcell.Key]KeyEntry),
	}
	seen := make(map[string]string)

	// Sorted so duplicate-key errors are reported deterministically
	actions := make([]string, 0, len(raw))
	for name := range raw {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		entry, err := resolveAction(name)
		if err != nil {
			return nil, err
		}

		for _, keyStr := range raw[name] {
			norm := strings.ToLower(strings.TrimSpace(keyStr))
			if prev, dup := seen[norm]; dup {
				return nil, fmt.Errorf("key %q bound to both %q and %q", keyStr, prev, name)
			}
			seen[norm] = name

			if r, ok := resolveRune(norm); ok {
				kt.Runes[r] = entry
				continue
			}
			k, ok := keysByName[norm]
			if !ok {
				return nil, fmt.Errorf("[%s] %w: %q", name, ErrUnknownKey, keyStr)
			}
			kt.Keys[k] = entry
		}
	}

	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[s]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), true
	}
	return 0, false
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return entry, nil
}
