package densitymesh

import (
	"github.com/Faultbox/densitymesh/pkg/densitymap"
)

// candidate is a cell eligible for point insertion: its world position,
// local steepness and required squared separation at that steepness.
type candidate struct {
	point     Coord
	steepness float64
	sepSq     float64
}

// SamplePoints builds the point cloud for triangulation. The cloud starts
// with the caller's seed points plus the four field corners (so the convex
// hull of the triangulation covers the whole field), then greedily accepts
// the steepest remaining candidate cell; each acceptance discards the
// candidates within their local separation of the new point, and sampling
// continues until no candidate is left. The corners only anchor the hull
// and are exempt from the separation rule, so an accepted point may sit
// closer than its local separation to a corner; the rule binds seeds and
// accepted points. MaxIterations bounds consecutive fruitless attempts.
// Inputs are never mutated.
func SamplePoints(m *densitymap.Map, steep *densitymap.Steepness, seeds []Coord, settings Settings) []Coord {
	points := dedupePoints(append(fieldCorners(m), seeds...))
	seen := make(map[Coord]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}

	// Candidates conflicting with a caller seed can never be placed.
	remaining := pruneClose(collectCandidates(m, steep, settings), seeds...)

	tries := settings.MaxIterations
	for len(remaining) > 0 && tries > 0 {
		best := steepestCandidate(remaining)
		c := remaining[best]
		remaining[best] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		if _, dup := seen[c.point]; dup {
			tries--
			continue
		}
		points = append(points, c.point)
		seen[c.point] = struct{}{}
		remaining = pruneClose(remaining, c.point)
		tries = settings.MaxIterations
	}
	return points
}

// pruneClose discards candidates within their local separation of any
// obstacle.
func pruneClose(remaining []candidate, obstacles ...Coord) []candidate {
	if len(obstacles) == 0 {
		return remaining
	}
	kept := remaining[:0]
	for _, c := range remaining {
		if apart(c, obstacles) {
			kept = append(kept, c)
		}
	}
	return kept
}

// collectCandidates gathers every cell that is both visible and steep
// enough to justify an extra point.
func collectCandidates(m *densitymap.Map, steep *densitymap.Steepness, settings Settings) []candidate {
	scale := m.Scale()
	remaining := make([]candidate, 0, m.UnscaledWidth())
	for row := 0; row < m.UnscaledHeight(); row++ {
		for col := 0; col < m.UnscaledWidth(); col++ {
			v := m.Value(col, row)
			s := steep.Value(col, row)
			if v <= settings.VisibilityThreshold || s <= settings.SteepnessThreshold {
				continue
			}
			sep := settings.Separation.At(s)
			remaining = append(remaining, candidate{
				point:     C(float64(col*scale), float64(row*scale)),
				steepness: s,
				sepSq:     sep * sep,
			})
		}
	}
	return remaining
}

// steepestCandidate returns the index of the steepest candidate; ties go to
// the earliest in scan order so runs are reproducible.
func steepestCandidate(remaining []candidate) int {
	best := 0
	for i := 1; i < len(remaining); i++ {
		if remaining[i].steepness > remaining[best].steepness {
			best = i
		}
	}
	return best
}

// apart reports whether the candidate keeps its required separation from
// every point in obstacles.
func apart(c candidate, obstacles []Coord) bool {
	for _, p := range obstacles {
		if p.Sub(c.point).SqrLength() <= c.sepSq {
			return false
		}
	}
	return true
}

// fieldCorners returns the four corners of the scaled field, deduplicated
// for degenerate sizes.
func fieldCorners(m *densitymap.Map) []Coord {
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	fw, fh := float64(w-1), float64(h-1)
	return []Coord{
		C(0, 0),
		C(fw, 0),
		C(fw, fh),
		C(0, fh),
	}
}

// dedupePoints removes exact duplicate locations, keeping first occurrences
// in order.
func dedupePoints(points []Coord) []Coord {
	seen := make(map[Coord]struct{}, len(points))
	out := make([]Coord, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
