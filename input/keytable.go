package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Command

	// Printable rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     CommandMoveUp,
			tcell.KeyDown:   CommandMoveDown,
			tcell.KeyLeft:   CommandMoveLeft,
			tcell.KeyRight:  CommandMoveRight,
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyCtrlQ:  CommandQuit,
			tcell.KeyCtrlS:  CommandToggleMute,
		},
		Runes: map[rune]Command{
			'k': CommandMoveUp,
			'j': CommandMoveDown,
			'h': CommandMoveLeft,
			'l': CommandMoveRight,
			'q': CommandQuit,
		},
	}
}

// Resolve returns the command bound to a key event, CommandIgnore if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		if c, ok := kt.Runes[ev.Rune()]; ok {
			return c
		}
		return CommandIgnore
	}
	if c, ok := kt.SpecialKeys[ev.Key()]; ok {
		return c
	}
	return CommandIgnore
}

// Translate converts any tcell event into a command
func (kt *KeyTable) Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Resolve(ev)
	case *tcell.EventResize:
		return CommandRedraw
	}
	return CommandIgnore
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Command, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Command, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
