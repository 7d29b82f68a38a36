package input

import "github.com/lixenwraith/pbert/board"

// Command is a discrete instruction for the game loop
type Command uint8

const (
	CommandIgnore Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandQuit

	// Loop-level commands, no board transition
	CommandRedraw     // terminal resized
	CommandToggleMute // Ctrl+S
)

// Direction returns the board direction for movement commands
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case CommandMoveUp:
		return board.Up, true
	case CommandMoveDown:
		return board.Down, true
	case CommandMoveLeft:
		return board.Left, true
	case CommandMoveRight:
		return board.Right, true
	}
	return 0, false
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "ignore"
}

var commandNames = map[Command]string{
	CommandIgnore:     "ignore",
	CommandMoveUp:     "move_up",
	CommandMoveDown:   "move_down",
	CommandMoveLeft:   "move_left",
	CommandMoveRight:  "move_right",
	CommandQuit:       "quit",
	CommandRedraw:     "redraw",
	CommandToggleMute: "toggle_mute",
}
