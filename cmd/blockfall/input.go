package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetra"
)

// Held keys repeat after RepeatDelay ticks, every RepeatRate ticks.
const (
	RepeatDelay = 10
	RepeatRate  = 3
)

type binding struct {
	key     ebiten.Key
	command tetra.Command
	repeat  bool
}

var bindings = []binding{
	{ebiten.KeyLeft, tetra.MoveLeft, true},
	{ebiten.KeyRight, tetra.MoveRight, true},
	{ebiten.KeyDown, tetra.SoftDrop, true},
	{ebiten.KeySpace, tetra.HardDrop, false},
	{ebiten.KeyUp, tetra.RotateClockwise, false},
	{ebiten.KeyX, tetra.RotateClockwise, false},
	{ebiten.KeyZ, tetra.RotateCounterClockwise, false},
}

// repeats reports whether a key held for duration ticks fires this tick.
func repeats(duration int) bool {
	if duration <= RepeatDelay {
		return false
	}
	return (duration-RepeatDelay)%RepeatRate == 0
}

// pollCommands returns the commands fired by the keyboard this tick.
func pollCommands() []tetra.Command {
	var cmds []tetra.Command
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			cmds = append(cmds, b.command)
			continue
		}
		if b.repeat && repeats(inpututil.KeyPressDuration(b.key)) {
			cmds = append(cmds, b.command)
		}
	}
	return cmds
}
