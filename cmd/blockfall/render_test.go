package main

import (
	"testing"

	"github.com/plus3/blockfall/tetra"
	"github.com/stretchr/testify/assert"
)

func TestFieldLayoutCellPos(t *testing.T) {
	l := newFieldLayout(tetra.NewGrid(10, 20).Bounds())

	x, y := l.cellPos(tetra.Vec{X: -5, Y: 9})
	assert.Equal(t, float32(Margin), x, "left column")
	assert.Equal(t, float32(Margin), y, "top row is drawn first")

	x, y = l.cellPos(tetra.Vec{X: 4, Y: -10})
	assert.Equal(t, float32(Margin+9*CellSize), x)
	assert.Equal(t, float32(Margin+19*CellSize), y)
}

func TestScreenSize(t *testing.T) {
	w, h := screenSize(tetra.NewGrid(10, 20).Bounds())
	assert.Equal(t, Margin*3+10*CellSize+SidebarWidth, w)
	assert.Equal(t, Margin*2+20*CellSize, h)
}

func TestRepeats(t *testing.T) {
	var fired []int
	for d := 0; d <= RepeatDelay+3*RepeatRate; d++ {
		if repeats(d) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{RepeatDelay + RepeatRate, RepeatDelay + 2*RepeatRate, RepeatDelay + 3*RepeatRate}, fired)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, kindColors[tetra.T], colorOf(tetra.T.Tag()))
	assert.Equal(t, borderColor, colorOf(tetra.Tag(42)))
}
