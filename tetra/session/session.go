package session

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetra"
)

// Stats provides timing statistics about board updates.
type Stats struct {
	Ticks         int64
	Commands      int64
	Events        int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// Frame is one recorded update: the elapsed time and the commands flushed with it.
type Frame struct {
	DT       time.Duration
	Commands []tetra.Command
}

// Session drives a Board from a host loop. Commands may be pushed from any
// goroutine; they are buffered and flushed into the board on the next Once.
// The board itself is only touched by the goroutine calling Once or Run.
type Session struct {
	board *tetra.Board

	mu      sync.Mutex
	queue   []tetra.Command
	defers  []func(*tetra.Board)
	stats   Stats
	minSeen bool

	subscribers []func(tetra.Event)

	recording bool
	frames    []Frame
}

// New creates a session for board.
func New(board *tetra.Board) *Session {
	return &Session{board: board}
}

// Board returns the driven board. Callers on other goroutines must not use it
// while Run is active.
func (s *Session) Board() *tetra.Board {
	return s.board
}

// Push queues commands for the next update.
func (s *Session) Push(cmds ...tetra.Command) {
	s.mu.Lock()
	s.queue = append(s.queue, cmds...)
	s.mu.Unlock()
}

// Defer queues fn to run against the board after the next update, once its
// events have been delivered. Deferred functions are not recorded.
func (s *Session) Defer(fn func(*tetra.Board)) {
	s.mu.Lock()
	s.defers = append(s.defers, fn)
	s.mu.Unlock()
}

// Flush runs the deferred functions without updating the board. Queued
// commands stay queued.
func (s *Session) Flush() {
	s.mu.Lock()
	defers := s.defers
	s.defers = nil
	s.mu.Unlock()

	for _, fn := range defers {
		fn(s.board)
	}
}

// Subscribe registers fn to receive every event produced by Once, in order.
func (s *Session) Subscribe(fn func(tetra.Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// Record starts or stops frame recording. Starting discards any previous recording.
func (s *Session) Record(on bool) {
	if on && !s.recording {
		s.frames = nil
	}
	s.recording = on
}

// Frames returns the frames recorded so far.
func (s *Session) Frames() []Frame {
	return s.frames
}

// Once flushes the queued commands into a single board update of dt and
// returns the events it produced.
func (s *Session) Once(dt time.Duration) []tetra.Event {
	s.mu.Lock()
	cmds := s.queue
	defers := s.defers
	s.queue = nil
	s.defers = nil
	s.mu.Unlock()

	start := time.Now()
	s.board.Update(dt, cmds...)
	duration := time.Since(start)

	events := s.board.Events()
	s.track(duration, len(cmds), len(events))

	if s.recording {
		s.frames = append(s.frames, Frame{DT: dt, Commands: cmds})
	}

	for _, e := range events {
		for _, fn := range s.subscribers {
			fn(e)
		}
	}

	for _, fn := range defers {
		fn(s.board)
	}

	return events
}

func (s *Session) track(duration time.Duration, cmds, events int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &s.stats
	st.Ticks++
	st.Commands += int64(cmds)
	st.Events += int64(events)
	st.LastDuration = duration
	st.TotalDuration += duration

	if !s.minSeen || duration < st.MinDuration {
		st.MinDuration = duration
		s.minSeen = true
	}
	if duration > st.MaxDuration {
		st.MaxDuration = duration
	}
	st.AvgDuration = st.TotalDuration / time.Duration(st.Ticks)
}

// Run calls Once repeatedly at the given interval until the context is cancelled.
// dt is the wall time between ticker fires.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns a snapshot of the update statistics.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Replay applies frames to board in order and returns every event produced.
// board must be in the state the recording started from.
func Replay(board *tetra.Board, frames []Frame) []tetra.Event {
	var events []tetra.Event
	for _, f := range frames {
		board.Update(f.DT, f.Commands...)
		events = append(events, board.Events()...)
	}
	return events
}
