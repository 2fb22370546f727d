package tetra

import (
	"fmt"
	"time"
)

// Board owns the grid and the active piece and runs the spawn, lock, clear,
// respawn cycle. It is not safe for concurrent use; a host loop feeds it one
// Update at a time.
type Board struct {
	cfg  Config
	grid *Grid
	rng  Randomizer

	piece  *Piece
	next   Kind
	primed bool
	over   bool

	lines  int
	locked int
	events []Event
}

// New validates cfg and returns an empty board with no active piece.
// Call Spawn to start play.
func New(cfg Config, rng Randomizer) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil randomizer", ErrInvalidConfig)
	}

	cfg.Catalog = cfg.Catalog.Clone()
	return &Board{
		cfg:  cfg,
		grid: NewGrid(cfg.Width, cfg.Height),
		rng:  rng,
	}, nil
}

// Config returns a copy of the configuration the board was built with.
// Changing it does not affect the board.
func (b *Board) Config() Config {
	cfg := b.cfg
	cfg.Catalog = cfg.Catalog.Clone()
	return cfg
}

// Spawn starts a new piece of the next randomized kind.
func (b *Board) Spawn() error {
	if b.over {
		return ErrGameOver
	}
	return b.SpawnKind(b.draw())
}

// SpawnKind starts a new piece of kind k at the spawn anchor. When the spawn
// placement does not fit, the board is over and ErrSpawnBlocked is returned.
func (b *Board) SpawnKind(k Kind) error {
	if b.over {
		return ErrGameOver
	}

	shape := b.cfg.Catalog.Shape(k)
	piece := newPiece(shape, b.cfg.Spawn, b.cfg.StepDelay, b.cfg.LockDelay)
	if !b.grid.Fits(shape.Cells, b.cfg.Spawn) {
		b.piece = nil
		b.over = true
		b.emit(Event{Type: EventGameOver, Kind: k, Cells: piece.Cells()})
		return fmt.Errorf("%s at %s: %w", k, b.cfg.Spawn, ErrSpawnBlocked)
	}

	b.piece = &piece
	b.emit(Event{Type: EventSpawned, Kind: k, Cells: piece.Cells()})
	return nil
}

// draw takes the upcoming kind and refills the one-piece lookahead.
func (b *Board) draw() Kind {
	if !b.primed {
		b.next = b.rng.Next()
		b.primed = true
	}
	k := b.next
	b.next = b.rng.Next()
	return k
}

// Next returns the kind the following Spawn will use.
func (b *Board) Next() Kind {
	if !b.primed {
		b.next = b.rng.Next()
		b.primed = true
	}
	return b.next
}

// Update advances the board by dt: timers run first, then cmds apply in order,
// then gravity. A command can therefore save a piece whose lock is due this tick.
func (b *Board) Update(dt time.Duration, cmds ...Command) {
	if b.piece == nil {
		return
	}

	b.piece.advance(dt)

	for _, cmd := range cmds {
		if b.piece == nil {
			return
		}
		b.apply(cmd)
	}

	if b.piece == nil || !b.piece.due() {
		return
	}
	if b.piece.Step(b.grid) {
		b.lock()
	}
}

// Tick advances the board by dt with no player input.
func (b *Board) Tick(dt time.Duration) {
	b.Update(dt)
}

// Do applies cmd immediately without advancing time. It reports whether the
// command was accepted.
func (b *Board) Do(cmd Command) bool {
	if b.piece == nil {
		return false
	}
	return b.apply(cmd)
}

func (b *Board) apply(cmd Command) bool {
	p := b.piece
	switch cmd {
	case MoveLeft:
		return p.Move(b.grid, Left)
	case MoveRight:
		return p.Move(b.grid, Right)
	case SoftDrop:
		return p.Move(b.grid, Down)
	case RotateClockwise:
		return p.Rotate(b.grid, Clockwise)
	case RotateCounterClockwise:
		return p.Rotate(b.grid, CounterClockwise)
	case HardDrop:
		p.HardDrop(b.grid)
		b.lock()
		return true
	default:
		return false
	}
}

// lock commits the active piece, clears full rows and spawns the next piece.
func (b *Board) lock() {
	p := b.piece
	cells := p.Cells()

	b.grid.Set(cells, p.Kind().Tag())
	b.locked++
	b.emit(Event{Type: EventLocked, Kind: p.Kind(), Cells: cells})

	if rows := b.grid.ClearLines(); len(rows) > 0 {
		b.lines += len(rows)
		b.emit(Event{Type: EventLinesCleared, Kind: p.Kind(), Rows: rows, Count: len(rows)})
	}

	b.piece = nil
	// A blocked respawn is reported through EventGameOver.
	_ = b.Spawn()
}

func (b *Board) emit(e Event) {
	b.events = append(b.events, e)
}

// Events returns the events emitted since the last call and clears the buffer.
func (b *Board) Events() []Event {
	events := b.events
	b.events = nil
	return events
}

// Active returns a copy of the falling piece. When ok is false the zero
// Piece is returned; its Kind is NoKind and it refuses every move.
func (b *Board) Active() (Piece, bool) {
	if b.piece == nil {
		return Piece{}, false
	}
	return *b.piece, true
}

// Ghost returns the absolute cells of the drop preview for the active piece.
func (b *Board) Ghost() ([4]Vec, bool) {
	if b.piece == nil {
		return [4]Vec{}, false
	}
	return translate(b.piece.cells, b.piece.Landing(b.grid)), true
}

// Grid exposes the field for read-only queries.
func (b *Board) Grid() GridView {
	return b.grid
}

// Bounds returns the field rectangle.
func (b *Board) Bounds() Rect {
	return b.grid.Bounds()
}

// Occupied enumerates locked cells for rendering.
func (b *Board) Occupied() []Cell {
	return b.grid.Occupied()
}

// Over reports whether a spawn has been blocked.
func (b *Board) Over() bool {
	return b.over
}

// Lines returns the number of rows cleared since the board was created or reset.
func (b *Board) Lines() int {
	return b.lines
}

// Locked returns the number of pieces locked since the board was created or reset.
func (b *Board) Locked() int {
	return b.locked
}

// Reset empties the field and clears the game-over state. The lookahead and
// randomizer state are kept; call Spawn to resume.
func (b *Board) Reset() {
	b.grid.Reset()
	b.piece = nil
	b.over = false
	b.lines = 0
	b.locked = 0
	b.events = nil
}
