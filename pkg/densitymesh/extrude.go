package densitymesh

// edgeKey identifies an undirected edge by its ordered vertex pair.
type edgeKey struct {
	lo, hi int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// Extrude adds a border skirt: every boundary edge (an edge incident to
// exactly one triangle) gains a pair of vertices offset outward by size and
// two triangles connecting them to the original edge. Interior topology is
// untouched. A size of 0 returns the mesh unchanged.
func Extrude(mesh Mesh, size float64) Mesh {
	if size == 0 || len(mesh.Triangles) == 0 {
		return mesh
	}
	counts := make(map[edgeKey]int, len(mesh.Triangles)*3)
	for _, t := range mesh.Triangles {
		counts[newEdgeKey(t.A, t.B)]++
		counts[newEdgeKey(t.B, t.C)]++
		counts[newEdgeKey(t.C, t.A)]++
	}

	points := make([]Coord, len(mesh.Points), len(mesh.Points)*2)
	copy(points, mesh.Points)
	triangles := make([]Triangle, len(mesh.Triangles), len(mesh.Triangles)*2)
	copy(triangles, mesh.Triangles)

	for _, t := range mesh.Triangles {
		for _, e := range [3][3]int{{t.A, t.B, t.C}, {t.B, t.C, t.A}, {t.C, t.A, t.B}} {
			a, b, opposite := e[0], e[1], e[2]
			if counts[newEdgeKey(a, b)] != 1 {
				continue
			}
			pa, pb := mesh.Points[a], mesh.Points[b]
			n := pb.Sub(pa).Right().Normalize()
			// Point the normal away from the triangle interior.
			if mesh.Points[opposite].Sub(pa).Dot(n) > 0 {
				n = n.Scale(-1)
			}
			ea := len(points)
			eb := ea + 1
			points = append(points, pa.Add(n.Scale(size)), pb.Add(n.Scale(size)))
			triangles = append(triangles,
				Triangle{A: b, B: a, C: ea},
				Triangle{A: ea, B: eb, C: b},
			)
		}
	}
	return Mesh{Points: points, Triangles: triangles}
}
