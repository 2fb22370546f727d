package tetra

import (
	"fmt"
	"strings"
)

// Command is a player action accepted by a Board.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateClockwise
	RotateCounterClockwise
)

var commandNames = [...]string{
	MoveLeft:               "move_left",
	MoveRight:              "move_right",
	SoftDrop:               "soft_drop",
	HardDrop:               "hard_drop",
	RotateClockwise:        "rotate_cw",
	RotateCounterClockwise: "rotate_ccw",
}

// Commands lists every command.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, SoftDrop, HardDrop, RotateClockwise, RotateCounterClockwise}
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand maps a command name such as "hard_drop" back to its Command.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if strings.EqualFold(s, name) {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}
