package core

// Command is the logical input sampled once per tick.
// Physical keys are mapped to commands by the platform layer.
type Command int

const (
	CommandNone  Command = iota
	CommandUp            // Up arrow, W, Space - jump
	CommandDown          // Down arrow, S - duck
	CommandLeft          // Left arrow, A - move one lane left
	CommandRight         // Right arrow, D - move one lane right
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseCommand converts a lowercase command name ("up", "down", "left",
// "right", "none") into a Command.
func ParseCommand(s string) (Command, bool) {
	switch s {
	case "none", "":
		return CommandNone, true
	case "up", "jump":
		return CommandUp, true
	case "down", "duck":
		return CommandDown, true
	case "left":
		return CommandLeft, true
	case "right":
		return CommandRight, true
	}
	return CommandNone, false
}
