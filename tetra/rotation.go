package tetra

import "math"

const (
	Clockwise        = 1
	CounterClockwise = -1
)

// rotationMatrix is {cos, sin, -sin, cos} of a quarter turn.
var rotationMatrix = [4]float64{0, 1, -1, 0}

// RotateCells turns cells a quarter turn in direction (Clockwise or
// CounterClockwise). I and O rotate about a half-cell offset centre and round
// up; every other kind rotates about its origin cell and rounds to nearest.
func RotateCells(kind Kind, cells [4]Vec, direction int) [4]Vec {
	switch kind {
	case I, O:
		return rotateHalfCell(cells, direction)
	default:
		return rotateDirect(cells, direction)
	}
}

func rotateHalfCell(cells [4]Vec, direction int) [4]Vec {
	var out [4]Vec
	for i, c := range cells {
		x, y := applyMatrix(float64(c.X)-0.5, float64(c.Y)-0.5, direction)
		out[i] = Vec{X: int(math.Ceil(x)), Y: int(math.Ceil(y))}
	}
	return out
}

func rotateDirect(cells [4]Vec, direction int) [4]Vec {
	var out [4]Vec
	for i, c := range cells {
		x, y := applyMatrix(float64(c.X), float64(c.Y), direction)
		out[i] = Vec{X: int(math.Round(x)), Y: int(math.Round(y))}
	}
	return out
}

func applyMatrix(x, y float64, direction int) (float64, float64) {
	d := float64(direction)
	m := rotationMatrix
	return x*m[0]*d + y*m[1]*d, x*m[2]*d + y*m[3]*d
}

// WrapIndex folds value into [0, n) for either sign of value.
func WrapIndex(value, n int) int {
	return ((value % n) + n) % n
}
