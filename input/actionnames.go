package input

// actionRegistry maps canonical action names to commands
// Used by the key binding loader to resolve configured action strings
var actionRegistry = map[string]Command{
	// Unbind sentinel, resolved as CommandIgnore and removed on merge
	"none": CommandIgnore,

	"move_up":    CommandMoveUp,
	"move_down":  CommandMoveDown,
	"move_left":  CommandMoveLeft,
	"move_right": CommandMoveRight,

	"quit":        CommandQuit,
	"toggle_mute": CommandToggleMute,
}

// ActionCommand returns the command for an action name
func ActionCommand(name string) (Command, bool) {
	c, ok := actionRegistry[name]
	return c, ok
}
