package tetra

import (
	"github.com/kamstrup/intmap"
)

// Tag is an opaque cell identifier supplied by whoever fills a cell.
// The Board stores the Kind of the piece that locked there.
type Tag int

// Cell pairs an occupied coordinate with its tag.
type Cell struct {
	Pos Vec
	Tag Tag
}

// Fitter is the placement validity predicate: every cell offset by at
// must be inside the field and unoccupied.
type Fitter interface {
	Fits(cells [4]Vec, at Vec) bool
}

// GridView is the read-only side of a Grid handed out to renderers.
type GridView interface {
	Fitter
	Bounds() Rect
	IsWithinBounds(pos Vec) bool
	IsOccupied(pos Vec) bool
	At(pos Vec) (Tag, bool)
	Occupied() []Cell
}

// cellKey packs a coordinate into a single integer key: column in the upper 32 bits,
// row in the lower 32 bits.
type cellKey uint64

func keyOf(pos Vec) cellKey {
	return cellKey(uint64(uint32(int32(pos.X)))<<32 | uint64(uint32(int32(pos.Y))))
}

// Grid is the bounded occupancy field, centred on the origin.
type Grid struct {
	bounds Rect
	cells  *intmap.Map[cellKey, Tag]
}

// NewGrid creates an empty grid of the given size. Bounds are
// [-(w/2), -(w/2)+w) x [-(h/2), -(h/2)+h).
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("grid dimensions must be positive")
	}

	origin := Vec{X: -(width / 2), Y: -(height / 2)}
	return &Grid{
		bounds: Rect{Min: origin, Max: Vec{X: origin.X + width, Y: origin.Y + height}},
		cells:  intmap.New[cellKey, Tag](width * height),
	}
}

// Bounds returns the half-open field rectangle.
func (g *Grid) Bounds() Rect {
	return g.bounds
}

// IsWithinBounds reports whether pos lies inside the field.
func (g *Grid) IsWithinBounds(pos Vec) bool {
	return g.bounds.Contains(pos)
}

// IsOccupied reports whether pos holds a cell. Coordinates outside the field
// count as occupied.
func (g *Grid) IsOccupied(pos Vec) bool {
	if !g.bounds.Contains(pos) {
		return true
	}
	_, ok := g.cells.Get(keyOf(pos))
	return ok
}

// At returns the tag stored at pos, if any.
func (g *Grid) At(pos Vec) (Tag, bool) {
	if !g.bounds.Contains(pos) {
		return 0, false
	}
	return g.cells.Get(keyOf(pos))
}

// Fits reports whether every cell offset by at is inside the field and empty.
func (g *Grid) Fits(cells [4]Vec, at Vec) bool {
	for _, c := range cells {
		pos := c.Add(at)
		if !g.bounds.Contains(pos) {
			return false
		}
		if _, ok := g.cells.Get(keyOf(pos)); ok {
			return false
		}
	}
	return true
}

// Set marks each coordinate as occupied with tag. Coordinates are not checked;
// callers commit placements that already passed Fits.
func (g *Grid) Set(cells [4]Vec, tag Tag) {
	for _, pos := range cells {
		g.cells.Put(keyOf(pos), tag)
	}
}

// Clear empties each coordinate.
func (g *Grid) Clear(cells [4]Vec) {
	for _, pos := range cells {
		g.cells.Del(keyOf(pos))
	}
}

// IsRowFull reports whether every column of row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	for col := g.bounds.Min.X; col < g.bounds.Max.X; col++ {
		if _, ok := g.cells.Get(keyOf(Vec{X: col, Y: row})); !ok {
			return false
		}
	}
	return true
}

// CollapseRow removes row by copying every row above it one step down.
// The top row ends up empty.
func (g *Grid) CollapseRow(row int) {
	for r := row; r < g.bounds.Max.Y; r++ {
		for col := g.bounds.Min.X; col < g.bounds.Max.X; col++ {
			dst := keyOf(Vec{X: col, Y: r})
			// Reading one past the top row yields nothing, which clears the top row.
			if tag, ok := g.at(Vec{X: col, Y: r + 1}); ok {
				g.cells.Put(dst, tag)
			} else {
				g.cells.Del(dst)
			}
		}
	}
}

func (g *Grid) at(pos Vec) (Tag, bool) {
	if pos.Y >= g.bounds.Max.Y {
		return 0, false
	}
	return g.cells.Get(keyOf(pos))
}

// ClearLines removes every full row in a single bottom-up pass and returns the
// indices those rows had before the pass, in ascending order.
func (g *Grid) ClearLines() []int {
	var cleared []int

	row := g.bounds.Min.Y
	for row < g.bounds.Max.Y {
		if g.IsRowFull(row) {
			// Every earlier collapse happened at or below row, so the row
			// now here originally sat len(cleared) rows higher.
			cleared = append(cleared, row+len(cleared))
			g.CollapseRow(row)
			continue
		}
		row++
	}

	return cleared
}

// Occupied enumerates every occupied cell, bottom row first, left to right.
func (g *Grid) Occupied() []Cell {
	out := make([]Cell, 0, g.cells.Len())
	for row := g.bounds.Min.Y; row < g.bounds.Max.Y; row++ {
		for col := g.bounds.Min.X; col < g.bounds.Max.X; col++ {
			pos := Vec{X: col, Y: row}
			if tag, ok := g.cells.Get(keyOf(pos)); ok {
				out = append(out, Cell{Pos: pos, Tag: tag})
			}
		}
	}
	return out
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return g.cells.Len()
}

// Reset empties the whole grid.
func (g *Grid) Reset() {
	g.cells.Clear()
}
