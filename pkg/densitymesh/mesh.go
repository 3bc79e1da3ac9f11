package densitymesh

// Triangle is a triple of vertex indices into a mesh point list, wound
// counter-clockwise.
type Triangle struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
	C int `json:"c" yaml:"c"`
}

// Mesh is a planar triangle mesh: unique vertices plus index triples.
type Mesh struct {
	Points    []Coord    `json:"points" yaml:"points"`
	Triangles []Triangle `json:"triangles" yaml:"triangles"`
}

// compact drops vertices referenced by no triangle and renumbers indices.
// A mesh with no triangles keeps its vertices untouched, so degenerate
// results still carry the point cloud.
func compact(points []Coord, triangles []Triangle) Mesh {
	if len(triangles) == 0 {
		return Mesh{Points: points, Triangles: triangles}
	}
	used := make([]bool, len(points))
	for _, t := range triangles {
		used[t.A] = true
		used[t.B] = true
		used[t.C] = true
	}
	mapping := make([]int, len(points))
	kept := make([]Coord, 0, len(points))
	for i, p := range points {
		if used[i] {
			mapping[i] = len(kept)
			kept = append(kept, p)
		}
	}
	remapped := make([]Triangle, len(triangles))
	for i, t := range triangles {
		remapped[i] = Triangle{A: mapping[t.A], B: mapping[t.B], C: mapping[t.C]}
	}
	return Mesh{Points: kept, Triangles: remapped}
}
