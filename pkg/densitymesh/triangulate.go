package densitymesh

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// Triangulate computes a Delaunay triangulation covering the convex hull of
// the point set. Degenerate input (fewer than 3 points, or all points
// collinear) is recoverable: the returned mesh keeps the input points with
// an empty triangle list, and the error wraps ErrDegenerateGeometry.
// Triangles are rewound to a consistent orientation, and the result depends
// only on the input order, so identical input yields identical output.
func Triangulate(points []Coord) (Mesh, error) {
	if len(points) < 3 {
		return Mesh{Points: points}, fmt.Errorf("%w: %d points", ErrDegenerateGeometry, len(points))
	}
	dpoints := make([]delaunay.Point, len(points))
	for i, p := range points {
		dpoints[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	triangulation, err := delaunay.Triangulate(dpoints)
	if err != nil {
		return Mesh{Points: points}, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}
	indices := triangulation.Triangles
	triangles := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		t := Triangle{A: indices[i], B: indices[i+1], C: indices[i+2]}
		// Rewind to counter-clockwise in image space (y axis down).
		if signedArea(points[t.A], points[t.B], points[t.C]) > 0 {
			t.B, t.C = t.C, t.B
		}
		triangles = append(triangles, t)
	}
	return Mesh{Points: points, Triangles: triangles}, nil
}

// signedArea returns twice the signed area of the triangle abc; negative
// for counter-clockwise winding in image space (y axis down).
func signedArea(a, b, c Coord) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
