package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// nameToKey is the lower-cased inverse of tcell.KeyNames
var nameToKey = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyByName resolves a tcell key name ("Up", "Esc", "Ctrl-S"), case-insensitive
// "ctrl+s" is accepted as a spelling of "ctrl-s"
func KeyByName(name string) (tcell.Key, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "+", "-")
	k, ok := nameToKey[name]
	return k, ok
}

// LoadKeyBindings converts key name → action name pairs into a sparse override KeyTable
// Single characters and rune aliases bind runes, anything else must be a tcell key name
// Returns error on unknown action names or key names
func LoadKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Command),
		Runes:       make(map[rune]Command),
	}

	for keyStr, actionName := range bindings {
		cmd, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = cmd
			continue
		}

		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.SpecialKeys[k] = cmd
	}

	return kt, nil
}

// resolveRune converts a key string to a rune when it names one
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a Command
func resolveAction(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	cmd, ok := ActionCommand(name)
	if !ok {
		return CommandIgnore, fmt.Errorf("unknown action: %q", name)
	}
	return cmd, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to CommandIgnore ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.SpecialKeys {
		if v == CommandIgnore {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == CommandIgnore {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
