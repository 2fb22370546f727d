package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetra"
	"github.com/plus3/blockfall/tetra/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, rng tetra.Randomizer) *tetra.Board {
	t.Helper()
	board, err := tetra.New(tetra.DefaultConfig(), rng)
	require.NoError(t, err)
	require.NoError(t, board.Spawn())
	return board
}

func TestSession(t *testing.T) {
	t.Run("queued commands apply before gravity", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.Sequence(tetra.T)))
		s.Push(tetra.MoveLeft, tetra.MoveLeft)

		s.Once(time.Second)

		piece, ok := s.Board().Active()
		require.True(t, ok)
		assert.Equal(t, tetra.Vec{X: -3, Y: 7}, piece.Anchor())
	})

	t.Run("queue is flushed once", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.Sequence(tetra.T)))
		s.Push(tetra.MoveRight)

		s.Once(0)
		s.Once(0)

		piece, _ := s.Board().Active()
		assert.Equal(t, tetra.Vec{X: 0, Y: 8}, piece.Anchor())
		assert.Equal(t, int64(1), s.Stats().Commands)
	})

	t.Run("events reach subscribers in order", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.Sequence(tetra.I, tetra.O)))

		var got []tetra.EventType
		s.Subscribe(func(e tetra.Event) { got = append(got, e.Type) })

		s.Push(tetra.HardDrop)
		events := s.Once(0)

		want := []tetra.EventType{tetra.EventSpawned, tetra.EventLocked, tetra.EventSpawned}
		assert.Equal(t, want, got)
		assert.Len(t, events, 3)
	})

	t.Run("deferred functions run after the update", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.Sequence(tetra.T)))
		s.Push(tetra.HardDrop)

		var locked int
		s.Defer(func(b *tetra.Board) { locked = b.Locked() })
		s.Once(0)
		assert.Equal(t, 1, locked)

		locked = -1
		s.Once(0)
		assert.Equal(t, -1, locked, "defers run once")
	})

	t.Run("flush runs defers without ticking", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.Sequence(tetra.T)))
		s.Push(tetra.HardDrop)

		var ran int
		s.Defer(func(b *tetra.Board) { ran++ })
		s.Flush()
		s.Flush()

		assert.Equal(t, 1, ran)
		assert.Equal(t, 0, s.Board().Locked(), "queued commands are not applied")
		assert.Equal(t, int64(0), s.Stats().Ticks)

		s.Once(0)
		assert.Equal(t, 1, s.Board().Locked())
	})

	t.Run("stats", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.NewUniform(1)))
		for range 5 {
			s.Once(time.Millisecond)
		}

		stats := s.Stats()
		assert.Equal(t, int64(5), stats.Ticks)
		assert.LessOrEqual(t, stats.MinDuration, stats.MaxDuration)
		assert.Equal(t, stats.TotalDuration/5, stats.AvgDuration)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		s := session.New(newBoard(t, tetra.NewUniform(1)))

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			s.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("session did not stop after context cancellation")
		}

		if s.Stats().Ticks == 0 {
			t.Error("expected at least one tick")
		}
	})
}

func TestSessionConcurrentPush(t *testing.T) {
	s := session.New(newBoard(t, tetra.NewBag(9)))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				s.Push(tetra.RotateClockwise)
			}
		}()
	}
	wg.Wait()

	s.Once(0)
	assert.Equal(t, int64(400), s.Stats().Commands)
}

func TestReplayReproducesBoard(t *testing.T) {
	script := [][]tetra.Command{
		{tetra.MoveLeft, tetra.RotateClockwise},
		{},
		{tetra.HardDrop},
		{tetra.MoveRight, tetra.MoveRight, tetra.SoftDrop},
		{tetra.RotateCounterClockwise, tetra.HardDrop},
		{},
		{tetra.HardDrop},
	}

	live := session.New(newBoard(t, tetra.NewBag(2024)))
	live.Record(true)

	var liveEvents []tetra.Event
	for _, cmds := range script {
		live.Push(cmds...)
		liveEvents = append(liveEvents, live.Once(400*time.Millisecond)...)
	}

	frames := live.Frames()
	require.Len(t, frames, len(script))

	replayed := newBoard(t, tetra.NewBag(2024))
	replayEvents := session.Replay(replayed, frames)

	assert.Equal(t, liveEvents, replayEvents)
	assert.Equal(t, live.Board().Occupied(), replayed.Occupied())

	livePiece, _ := live.Board().Active()
	replayPiece, _ := replayed.Active()
	assert.Equal(t, livePiece.Cells(), replayPiece.Cells())
	assert.Equal(t, live.Board().Next(), replayed.Next())
}

func TestRecordRestartDiscards(t *testing.T) {
	s := session.New(newBoard(t, tetra.Sequence(tetra.O)))

	s.Record(true)
	s.Once(0)
	s.Once(0)
	s.Record(false)
	s.Once(0)
	assert.Len(t, s.Frames(), 2)

	s.Record(true)
	s.Once(0)
	assert.Len(t, s.Frames(), 1)
}
