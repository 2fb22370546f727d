package debugui

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog(t *testing.T) {
	t.Run("newest first before wrapping", func(t *testing.T) {
		log := NewEventLog(4)
		log.Add(tetra.Event{Type: tetra.EventSpawned})
		log.Add(tetra.Event{Type: tetra.EventLocked})

		entries := log.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, tetra.EventLocked, entries[0].Type)
		assert.Equal(t, tetra.EventSpawned, entries[1].Type)
	})

	t.Run("evicts the oldest", func(t *testing.T) {
		log := NewEventLog(2)
		for i := range 5 {
			log.Add(tetra.Event{Count: i})
		}

		entries := log.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, 4, entries[0].Count)
		assert.Equal(t, 3, entries[1].Count)
		assert.Equal(t, 5, log.Total())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, NewEventLog(3).Entries())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { NewEventLog(0) })
	})
}

func TestDescribeEvent(t *testing.T) {
	cleared := tetra.Event{Type: tetra.EventLinesCleared, Count: 2, Rows: []int{-10, -9}}
	assert.Equal(t, "lines_cleared 2 rows [-10 -9]", describeEvent(cleared))

	spawned := tetra.Event{Type: tetra.EventSpawned, Kind: tetra.O, Cells: [4]tetra.Vec{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}}
	assert.Equal(t, "spawned O [(0,1) (1,1) (0,0) (1,0)]", describeEvent(spawned))
}

func TestFillByRow(t *testing.T) {
	board, err := tetra.New(tetra.DefaultConfig(), tetra.Sequence(tetra.I, tetra.O))
	require.NoError(t, err)
	require.NoError(t, board.Spawn())

	board.Update(0, tetra.HardDrop)
	board.Update(0, tetra.HardDrop)

	rows := fillByRow(board.Grid())
	assert.Equal(t, []rowFill{{Row: -8, Filled: 2}, {Row: -9, Filled: 2}, {Row: -10, Filled: 4}}, rows)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := &PerformanceStats{historyFrames: 4, frameHistory: make([]float32, 4)}
	for range 4 {
		ps.Sample(10 * time.Millisecond)
	}
	assert.InDelta(t, 10.0, ps.AvgFrameTime(), 0.001)

	ps.Sample(30 * time.Millisecond)
	assert.InDelta(t, 15.0, ps.AvgFrameTime(), 0.001)
}
