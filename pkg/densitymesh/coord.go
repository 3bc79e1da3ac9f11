// Package densitymesh converts a density map into a triangulated planar
// mesh whose triangle density follows the steepness of the field: flat
// regions become few large triangles, steep regions many small ones.
package densitymesh

import "math"

// Coord is a 2D point in field space.
type Coord struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// C is shorthand for constructing a Coord.
func C(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c + other.
func (c Coord) Add(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y}
}

// Sub returns c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{c.X - other.X, c.Y - other.Y}
}

// Scale returns c * s.
func (c Coord) Scale(s float64) Coord {
	return Coord{c.X * s, c.Y * s}
}

// Dot returns the dot product.
func (c Coord) Dot(other Coord) float64 {
	return c.X*other.X + c.Y*other.Y
}

// SqrLength returns the squared magnitude.
func (c Coord) SqrLength() float64 {
	return c.X*c.X + c.Y*c.Y
}

// Length returns the magnitude.
func (c Coord) Length() float64 {
	return math.Sqrt(c.SqrLength())
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (c Coord) Normalize() Coord {
	l := c.Length()
	if l == 0 {
		return Coord{}
	}
	return Coord{c.X / l, c.Y / l}
}

// Right returns the vector rotated 90 degrees clockwise.
func (c Coord) Right() Coord {
	return Coord{c.Y, -c.X}
}
