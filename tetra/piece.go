package tetra

import "time"

// PieceState is the lifecycle state of a Piece.
type PieceState uint8

const (
	Falling PieceState = iota
	Locked
)

func (s PieceState) String() string {
	if s == Locked {
		return "locked"
	}
	return "falling"
}

// Piece is the falling piece. It holds coordinates only; every placement check
// goes through the Fitter passed to each call.
type Piece struct {
	shape    *Shape
	anchor   Vec
	rotation int
	cells    [4]Vec
	state    PieceState

	stepDelay time.Duration
	lockDelay time.Duration
	// stepIn counts down to the next gravity step.
	stepIn time.Duration
	// lockTime is the time since the last accepted move or rotation.
	lockTime time.Duration
}

func newPiece(shape *Shape, anchor Vec, stepDelay, lockDelay time.Duration) Piece {
	return Piece{
		shape:     shape,
		anchor:    anchor,
		cells:     shape.Cells,
		stepDelay: stepDelay,
		lockDelay: lockDelay,
		stepIn:    stepDelay,
	}
}

// Kind returns the piece's shape kind, or NoKind for the zero Piece.
func (p *Piece) Kind() Kind {
	if p.shape == nil {
		return NoKind
	}
	return p.shape.Kind
}

func (p *Piece) Anchor() Vec                { return p.anchor }
func (p *Piece) Rotation() int              { return p.rotation }
func (p *Piece) State() PieceState          { return p.state }
func (p *Piece) LockTimer() time.Duration   { return p.lockTime }
func (p *Piece) StepTimer() time.Duration   { return p.stepIn }
func (p *Piece) Offsets() [4]Vec            { return p.cells }
func (p *Piece) Cells() [4]Vec              { return translate(p.cells, p.anchor) }
func (p *Piece) fits(f Fitter, at Vec) bool { return f.Fits(p.cells, at) }

// live reports whether the piece holds a shape and is still falling.
func (p *Piece) live() bool { return p.shape != nil && p.state == Falling }

// Move translates the piece by t if the result fits, resetting the lock timer.
func (p *Piece) Move(f Fitter, t Vec) bool {
	if !p.live() {
		return false
	}

	next := p.anchor.Add(t)
	if !p.fits(f, next) {
		return false
	}

	p.anchor = next
	p.lockTime = 0
	return true
}

// Rotate turns the piece a quarter turn in direction and tries the shape's wall
// kicks in order. When no kick fits, the rotation is undone and Rotate reports
// false. Any accepted rotation resets the lock timer.
func (p *Piece) Rotate(f Fitter, direction int) bool {
	if !p.live() || direction == 0 {
		return false
	}
	if direction > 0 {
		direction = Clockwise
	} else {
		direction = CounterClockwise
	}

	rotated := RotateCells(p.shape.Kind, p.cells, direction)
	target := WrapIndex(p.rotation+direction, 4)

	candidates := p.shape.Kicks[KickIndex(target, direction, len(p.shape.Kicks))]
	kick, _, ok := ResolveKick(candidates, func(t Vec) bool {
		return f.Fits(rotated, p.anchor.Add(t))
	})
	if !ok {
		return false
	}

	p.cells = rotated
	p.rotation = target
	p.anchor = p.anchor.Add(kick)
	p.lockTime = 0
	return true
}

// Landing returns the anchor the piece would rest at after a hard drop.
func (p *Piece) Landing(f GridView) Vec {
	landing, ok := Project(f, p.cells, p.anchor, f.Bounds().Min.Y-1)
	if !ok {
		return p.anchor
	}
	return landing
}

// HardDrop moves the piece to its landing row and locks it, returning the
// number of rows travelled.
func (p *Piece) HardDrop(f GridView) int {
	if !p.live() {
		return 0
	}

	landing := p.Landing(f)
	rows := p.anchor.Y - landing.Y
	p.anchor = landing
	p.state = Locked
	return rows
}

// Step runs one gravity step: reschedule, try to move down, and lock when the
// piece could not move and has rested for at least the lock delay.
// It reports whether the piece locked.
func (p *Piece) Step(f Fitter) bool {
	if !p.live() {
		return false
	}

	p.stepIn = p.stepDelay
	if p.Move(f, Down) {
		return false
	}

	if p.lockTime >= p.lockDelay {
		p.state = Locked
		return true
	}
	return false
}

func (p *Piece) advance(dt time.Duration) {
	p.lockTime += dt
	p.stepIn -= dt
}

func (p *Piece) due() bool {
	return p.stepIn <= 0
}
