package tetra

import "fmt"

// Vec is an integer grid coordinate or translation. X grows to the right, Y grows upward.
type Vec struct {
	X, Y int
}

var (
	Left  = Vec{X: -1}
	Right = Vec{X: 1}
	Down  = Vec{Y: -1}
)

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Rect is a half-open rectangle: Min is inside, Max is not.
type Rect struct {
	Min, Max Vec
}

// Contains reports whether v lies inside the rectangle.
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.Min.X && v.X < r.Max.X && v.Y >= r.Min.Y && v.Y < r.Max.Y
}

func (r Rect) Width() int  { return r.Max.X - r.Min.X }
func (r Rect) Height() int { return r.Max.Y - r.Min.Y }

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// translate returns every cell offset by anchor.
func translate(cells [4]Vec, anchor Vec) [4]Vec {
	var out [4]Vec
	for i, c := range cells {
		out[i] = c.Add(anchor)
	}
	return out
}
