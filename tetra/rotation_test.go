package tetra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateCellsDirect(t *testing.T) {
	base := DefaultCatalog()[T].Cells

	t.Run("clockwise", func(t *testing.T) {
		got := RotateCells(T, base, Clockwise)
		assert.Equal(t, [4]Vec{{1, 0}, {0, 1}, {0, 0}, {0, -1}}, got)
	})

	t.Run("counter-clockwise", func(t *testing.T) {
		got := RotateCells(T, base, CounterClockwise)
		assert.Equal(t, [4]Vec{{-1, 0}, {0, -1}, {0, 0}, {0, 1}}, got)
	})
}

func TestRotateCellsHalfCell(t *testing.T) {
	cat := DefaultCatalog()

	t.Run("O keeps its footprint", func(t *testing.T) {
		got := RotateCells(O, cat.Shape(O).Cells, Clockwise)
		assert.Equal(t, [4]Vec{{1, 1}, {1, 0}, {0, 1}, {0, 0}}, got)
		assert.ElementsMatch(t, cat.Shape(O).Cells[:], got[:])
	})

	t.Run("I clockwise", func(t *testing.T) {
		got := RotateCells(I, cat.Shape(I).Cells, Clockwise)
		assert.Equal(t, [4]Vec{{1, 2}, {1, 1}, {1, 0}, {1, -1}}, got)
	})

	t.Run("I counter-clockwise", func(t *testing.T) {
		got := RotateCells(I, cat.Shape(I).Cells, CounterClockwise)
		assert.Equal(t, [4]Vec{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, got)
	})
}

func TestRotateCellsRegimesDiffer(t *testing.T) {
	o := DefaultCatalog()[O].Cells
	assert.Equal(t, [4]Vec{{1, 0}, {1, -1}, {0, 0}, {0, -1}}, rotateDirect(o, Clockwise))

	tee := DefaultCatalog()[T].Cells
	assert.Equal(t, [4]Vec{{1, 1}, {0, 2}, {0, 1}, {0, 0}}, rotateHalfCell(tee, Clockwise))
}

func TestRotateCellsFullTurn(t *testing.T) {
	cat := DefaultCatalog()
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			base := cat.Shape(k).Cells

			cells := base
			for range 4 {
				cells = RotateCells(k, cells, Clockwise)
			}
			assert.Equal(t, base, cells, "four clockwise turns")

			cells = base
			for range 4 {
				cells = RotateCells(k, cells, CounterClockwise)
			}
			assert.Equal(t, base, cells, "four counter-clockwise turns")

			cells = RotateCells(k, RotateCells(k, base, Clockwise), CounterClockwise)
			assert.Equal(t, base, cells, "clockwise then back")
		})
	}
}

func TestRotateCellsIChain(t *testing.T) {
	cells := DefaultCatalog()[I].Cells
	want := [][4]Vec{
		{{1, 2}, {1, 1}, {1, 0}, {1, -1}},
		{{2, 0}, {1, 0}, {0, 0}, {-1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{-1, 1}, {0, 1}, {1, 1}, {2, 1}},
	}

	for i, w := range want {
		cells = RotateCells(I, cells, Clockwise)
		assert.Equal(t, w, cells, "after %d turns", i+1)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		value, n, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{-1, 8, 7},
		{9, 8, 1},
	}

	for _, tt := range tests {
		if got := WrapIndex(tt.value, tt.n); got != tt.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tt.value, tt.n, got, tt.want)
		}
	}
}
