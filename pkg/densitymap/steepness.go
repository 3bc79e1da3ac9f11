package densitymap

import "math"

// Steepness holds the local gradient magnitude of a density map, one value
// per cell. It is derived data: recompute it with Analyze whenever the
// source map changes.
type Steepness struct {
	width  int
	height int
	scale  int
	values []float64
}

// Analyze computes per-cell steepness for the whole map in a single pass.
// Each cell accumulates the six pairwise absolute differences of the 2x2
// sample quads overlapping it. Samples outside the map are clamped to the
// nearest edge cell, so a constant map yields zero steepness everywhere.
func Analyze(m *Map) *Steepness {
	values := make([]float64, len(m.values))
	for i := range values {
		col := i % m.width
		row := i / m.width
		values[i] = cellSteepness(m, col, row)
	}
	return &Steepness{
		width:  m.width,
		height: m.height,
		scale:  m.scale,
		values: values,
	}
}

// cellSteepness sums quad differences over the four 2x2 windows that
// contain the cell.
func cellSteepness(m *Map, col, row int) float64 {
	var result float64
	for x := col - 1; x < col+1; x++ {
		for y := row - 1; y < row+1; y++ {
			a := m.valueClamped(x, y)
			b := m.valueClamped(x+1, y)
			c := m.valueClamped(x+1, y+1)
			d := m.valueClamped(x, y+1)
			result += (math.Abs(a-b) + math.Abs(c-d) + math.Abs(a-c) +
				math.Abs(b-d) + math.Abs(a-d) + math.Abs(b-c)) / 12.0
		}
	}
	return result
}

// Width returns the number of columns.
func (s *Steepness) Width() int {
	return s.width
}

// Height returns the number of rows.
func (s *Steepness) Height() int {
	return s.height
}

// Values returns the raw steepness buffer in row-major order.
func (s *Steepness) Values() []float64 {
	return s.values
}

// Value returns the steepness at cell (col, row), or 0 if out of bounds.
func (s *Steepness) Value(col, row int) float64 {
	if col < 0 || col >= s.width || row < 0 || row >= s.height {
		return 0
	}
	return s.values[row*s.width+col]
}

// ValueAt returns the steepness under a scaled (world-space) point, or 0 if
// out of bounds.
func (s *Steepness) ValueAt(x, y int) float64 {
	return s.Value(x/s.scale, y/s.scale)
}
