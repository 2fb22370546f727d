package tetra_test

import (
	"testing"

	"github.com/plus3/blockfall/tetra"
	"github.com/stretchr/testify/assert"
)

func TestKickIndex(t *testing.T) {
	tests := []struct {
		name                      string
		rotation, direction, want int
	}{
		{"cw into 1", 1, tetra.Clockwise, 2},
		{"cw into 0", 0, tetra.Clockwise, 0},
		{"cw into 3", 3, tetra.Clockwise, 6},
		{"ccw into 3", 3, tetra.CounterClockwise, 5},
		{"ccw into 0 wraps", 0, tetra.CounterClockwise, 7},
		{"ccw into 2", 2, tetra.CounterClockwise, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tetra.KickIndex(tt.rotation, tt.direction, 8))
		})
	}
}

func TestResolveKickOrder(t *testing.T) {
	candidates := []tetra.Vec{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}}

	var tried []tetra.Vec
	kick, index, ok := tetra.ResolveKick(candidates, func(v tetra.Vec) bool {
		tried = append(tried, v)
		return v.Y == 1
	})

	assert.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, tetra.Vec{X: -1, Y: 1}, kick)
	assert.Equal(t, candidates[:3], tried, "stops at the first accepted candidate")
}

func TestResolveKickExhausted(t *testing.T) {
	candidates := []tetra.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}

	calls := 0
	_, index, ok := tetra.ResolveKick(candidates, func(tetra.Vec) bool {
		calls++
		return false
	})

	assert.False(t, ok)
	assert.Equal(t, -1, index)
	assert.Equal(t, 2, calls)
}

func TestResolveKickEmpty(t *testing.T) {
	_, index, ok := tetra.ResolveKick(nil, func(tetra.Vec) bool { return true })
	assert.False(t, ok)
	assert.Equal(t, -1, index)
}
