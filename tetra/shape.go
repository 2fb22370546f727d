package tetra

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of shapes in a Catalog.
const KindCount = 7

// NoKind is reported by a Piece that holds no shape.
const NoKind Kind = KindCount

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	if k == NoKind {
		return "none"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Tag returns the grid tag used for cells locked by a piece of this kind.
func (k Kind) Tag() Tag {
	return Tag(k)
}

// ParseKind maps a shape letter (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// Kinds lists every shape in catalog order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

// Shape is the static definition shared by every piece of one kind.
type Shape struct {
	Kind Kind
	// Cells are the spawn orientation offsets, relative to the anchor.
	Cells [4]Vec
	// Kicks holds one ordered candidate list per rotation transition, see KickIndex.
	Kicks [][]Vec
}

// Catalog holds one Shape per Kind, indexed by Kind.
type Catalog [KindCount]Shape

// Shape returns the definition for k.
func (c *Catalog) Shape(k Kind) *Shape {
	if int(k) >= len(c) {
		panic("shape kind " + k.String() + " not in catalog")
	}
	return &c[k]
}

// Clone returns a copy of c that shares no kick rows with it.
func (c *Catalog) Clone() Catalog {
	out := *c
	for i := range out {
		kicks := make([][]Vec, len(out[i].Kicks))
		for row, candidates := range out[i].Kicks {
			kicks[row] = slices.Clone(candidates)
		}
		out[i].Kicks = kicks
	}
	return out
}

// Validate checks that the catalog is usable by a Board.
func (c *Catalog) Validate() error {
	for i := range c {
		shape := &c[i]
		if shape.Kind != Kind(i) {
			return fmt.Errorf("%w: catalog slot %d holds shape %s", ErrInvalidConfig, i, shape.Kind)
		}
		if len(shape.Kicks) == 0 {
			return fmt.Errorf("%w: shape %s has no wall kick table", ErrInvalidConfig, shape.Kind)
		}
		for row, candidates := range shape.Kicks {
			if len(candidates) == 0 {
				return fmt.Errorf("%w: shape %s kick row %d is empty", ErrInvalidConfig, shape.Kind, row)
			}
		}
	}
	return nil
}

// Standard Rotation System kick data: eight rows of five candidates, the zero
// translation first. Rows are picked with KickIndex.
var (
	kicksI = [][]Vec{
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	}

	kicksJLOSTZ = [][]Vec{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}
)

// DefaultCatalog returns the Standard Rotation System shapes. The I and O
// pieces rotate around the corner shared by their centre cells, so their
// offsets are laid out with that corner at (0.5, 0.5).
func DefaultCatalog() Catalog {
	c := Catalog{
		{Kind: I, Cells: [4]Vec{{-1, 1}, {0, 1}, {1, 1}, {2, 1}}, Kicks: kicksI},
		{Kind: J, Cells: [4]Vec{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
		{Kind: L, Cells: [4]Vec{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
		{Kind: O, Cells: [4]Vec{{0, 1}, {1, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
		{Kind: S, Cells: [4]Vec{{0, 1}, {1, 1}, {-1, 0}, {0, 0}}, Kicks: kicksJLOSTZ},
		{Kind: T, Cells: [4]Vec{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
		{Kind: Z, Cells: [4]Vec{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	}
	return c.Clone()
}
