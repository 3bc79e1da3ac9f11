// Package densitymap provides the 2D scalar field that drives density mesh
// generation. A Map stores one scalar sample per cell, normalized to the
// 0..1 range from raw 8-bit data, plus an integer scale that maps cell
// coordinates to world coordinates.
package densitymap

import (
	"errors"
	"fmt"
)

// Map errors.
var (
	ErrWrongDataLength = errors.New("data length does not match region area")
	ErrInvalidRegion   = errors.New("region exceeds map bounds")
)

// Map is a density field: width*height scalar samples in the 0..1 range.
// Mutate it only through New or Change.
type Map struct {
	width  int
	height int
	scale  int
	values []float64
}

// New creates a density map from raw 8-bit samples. The data length must
// equal width*height.
func New(width, height, scale int, data []byte) (*Map, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidRegion, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongDataLength, len(data), width*height)
	}
	if scale < 1 {
		scale = 1
	}
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(v) / 255.0
	}
	return &Map{
		width:  width,
		height: height,
		scale:  scale,
		values: values,
	}, nil
}

// Scale returns the cell-to-world scale factor.
func (m *Map) Scale() int {
	return m.scale
}

// Width returns the scaled (world-space) width.
func (m *Map) Width() int {
	return m.width * m.scale
}

// Height returns the scaled (world-space) height.
func (m *Map) Height() int {
	return m.height * m.scale
}

// UnscaledWidth returns the number of columns.
func (m *Map) UnscaledWidth() int {
	return m.width
}

// UnscaledHeight returns the number of rows.
func (m *Map) UnscaledHeight() int {
	return m.height
}

// Values returns the raw sample buffer in row-major order.
// The returned slice is the live buffer; do not modify it.
func (m *Map) Values() []float64 {
	return m.values
}

// Value returns the sample at cell (col, row), or 0 if out of bounds.
func (m *Map) Value(col, row int) float64 {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return 0
	}
	return m.values[row*m.width+col]
}

// ValueAt returns the sample under a scaled (world-space) point, or 0 if
// out of bounds.
func (m *Map) ValueAt(x, y int) float64 {
	return m.Value(x/m.scale, y/m.scale)
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	values := make([]float64, len(m.values))
	copy(values, m.values)
	return &Map{
		width:  m.width,
		height: m.height,
		scale:  m.scale,
		values: values,
	}
}

// Change overwrites the sub-rectangle at (col, row) with raw 8-bit samples.
// The rectangle must lie fully within the map and the data length must equal
// width*height, otherwise the map is left untouched.
func (m *Map) Change(col, row, width, height int, data []byte) error {
	if col < 0 || row < 0 || width < 0 || height < 0 ||
		col+width > m.width || row+height > m.height {
		return fmt.Errorf("%w: rect %d,%d %dx%d in map %dx%d",
			ErrInvalidRegion, col, row, width, height, m.width, m.height)
	}
	if len(data) != width*height {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongDataLength, len(data), width*height)
	}
	for i, v := range data {
		x := col + i%width
		y := row + i/width
		m.values[y*m.width+x] = float64(v) / 255.0
	}
	return nil
}

// valueClamped returns the sample at (col, row) with coordinates clamped to
// the map, so edge cells see their nearest in-bounds neighbor.
func (m *Map) valueClamped(col, row int) float64 {
	if m.width == 0 || m.height == 0 {
		return 0
	}
	if col < 0 {
		col = 0
	} else if col >= m.width {
		col = m.width - 1
	}
	if row < 0 {
		row = 0
	} else if row >= m.height {
		row = m.height - 1
	}
	return m.values[row*m.width+col]
}
