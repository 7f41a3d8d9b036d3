package config

// Command represents an abstract per-frame player command
type Command int

const (
	CommandMoveRight Command = iota
	CommandMoveLeft
	CommandJump
	CommandMoveDown
	CommandPrimaryAction
	CommandSecondaryAction
	CommandMoveUp
	CommandCount // Must be last - used for array sizing
)

var commandNames = [CommandCount]string{
	CommandMoveRight:       "MOVE_RIGHT",
	CommandMoveLeft:        "MOVE_LEFT",
	CommandJump:            "JUMP",
	CommandMoveDown:        "MOVE_DOWN",
	CommandPrimaryAction:   "PRIMARY_ACTION",
	CommandSecondaryAction: "SECONDARY_ACTION",
	CommandMoveUp:          "MOVE_UP",
}

func (c Command) String() string {
	if c < 0 || c >= CommandCount {
		return "UNKNOWN"
	}
	return commandNames[c]
}
