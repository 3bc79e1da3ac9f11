package densitymap

import (
	"math"
	"testing"
)

func constantMap(t *testing.T, w, h int, v byte) *Map {
	t.Helper()
	data := make([]byte, w*h)
	for i := range data {
		data[i] = v
	}
	m, err := New(w, h, 1, data)
	if err != nil {
		t.Fatalf("failed to create map: %v", err)
	}
	return m
}

func TestAnalyzeConstantField(t *testing.T) {
	for _, v := range []byte{0, 128, 255} {
		steep := Analyze(constantMap(t, 4, 4, v))
		for i, s := range steep.Values() {
			if s != 0 {
				t.Fatalf("expected zero steepness on constant field %d, got %f at index %d", v, s, i)
			}
		}
	}
}

func TestAnalyzeSpike(t *testing.T) {
	m := constantMap(t, 3, 3, 0)
	if err := m.Change(1, 1, 1, 1, []byte{255}); err != nil {
		t.Fatalf("failed to change map: %v", err)
	}
	steep := Analyze(m)

	// Each of the four 2x2 windows around the center contains the spike as
	// one corner, contributing three unit differences out of twelve.
	if got := steep.Value(1, 1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected steepness 1 at spike, got %f", got)
	}

	// Cells not adjacent to the spike stay flat.
	flat := constantMap(t, 5, 5, 0)
	if err := flat.Change(2, 2, 1, 1, []byte{255}); err != nil {
		t.Fatalf("failed to change map: %v", err)
	}
	if got := Analyze(flat).Value(0, 0); got != 0 {
		t.Errorf("expected zero steepness far from spike, got %f", got)
	}
}

func TestAnalyzeDimensions(t *testing.T) {
	m, err := New(4, 3, 2, make([]byte, 12))
	if err != nil {
		t.Fatalf("failed to create map: %v", err)
	}
	steep := Analyze(m)

	if steep.Width() != 4 || steep.Height() != 3 {
		t.Errorf("expected 4x3 steepness, got %dx%d", steep.Width(), steep.Height())
	}
	if len(steep.Values()) != 12 {
		t.Errorf("expected 12 values, got %d", len(steep.Values()))
	}
}

func TestSteepnessValueOutOfBounds(t *testing.T) {
	steep := Analyze(constantMap(t, 2, 2, 255))
	if v := steep.Value(-1, 0); v != 0 {
		t.Errorf("expected 0 out of bounds, got %f", v)
	}
	if v := steep.Value(0, 2); v != 0 {
		t.Errorf("expected 0 out of bounds, got %f", v)
	}
}

func TestSteepnessValueAt(t *testing.T) {
	m, err := New(3, 3, 4, []byte{0, 0, 0, 0, 255, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("failed to create map: %v", err)
	}
	steep := Analyze(m)

	// World coordinates 4..7 map to the spike cell (1,1).
	if got := steep.ValueAt(5, 6); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected steepness 1 under spike, got %f", got)
	}
}
