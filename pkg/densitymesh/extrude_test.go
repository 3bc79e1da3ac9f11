package densitymesh

import (
	"math"
	"reflect"
	"testing"
)

func TestExtrudeZeroSize(t *testing.T) {
	mesh := Mesh{
		Points:    []Coord{C(0, 0), C(0, 10), C(10, 0)},
		Triangles: []Triangle{{A: 0, B: 1, C: 2}},
	}
	if got := Extrude(mesh, 0); !reflect.DeepEqual(got, mesh) {
		t.Error("expected mesh unchanged with size 0")
	}
}

func TestExtrudeEmptyMesh(t *testing.T) {
	mesh := Mesh{Points: []Coord{C(0, 0), C(1, 1)}}
	if got := Extrude(mesh, 2); !reflect.DeepEqual(got, mesh) {
		t.Error("expected mesh without triangles unchanged")
	}
}

func TestExtrudeSingleTriangle(t *testing.T) {
	mesh := Mesh{
		Points:    []Coord{C(0, 0), C(0, 10), C(10, 0)},
		Triangles: []Triangle{{A: 0, B: 1, C: 2}},
	}
	out := Extrude(mesh, 1)

	// Three boundary edges, each adding a vertex pair and two triangles.
	if len(out.Points) != 9 {
		t.Errorf("expected 9 points, got %d", len(out.Points))
	}
	if len(out.Triangles) != 7 {
		t.Errorf("expected 7 triangles, got %d", len(out.Triangles))
	}

	// The original geometry stays in place.
	if !reflect.DeepEqual(out.Points[:3], mesh.Points) {
		t.Error("original points were moved")
	}
	if out.Triangles[0] != mesh.Triangles[0] {
		t.Error("original triangle was changed")
	}

	// Every skirt vertex sits exactly size away from its source vertex.
	for _, p := range out.Points[3:] {
		closest := math.Inf(1)
		for _, q := range mesh.Points {
			if d := p.Sub(q).Length(); d < closest {
				closest = d
			}
		}
		if math.Abs(closest-1) > 1e-9 {
			t.Errorf("skirt vertex %v is %f from the mesh, want 1", p, closest)
		}
	}
}

func TestExtrudeSquare(t *testing.T) {
	mesh, err := Triangulate([]Coord{C(0, 0), C(10, 0), C(10, 10), C(0, 10)})
	if err != nil {
		t.Fatalf("failed to triangulate: %v", err)
	}
	out := Extrude(mesh, 2)

	// Four boundary edges; the shared diagonal is interior and untouched.
	if len(out.Points) != len(mesh.Points)+8 {
		t.Errorf("expected %d points, got %d", len(mesh.Points)+8, len(out.Points))
	}
	if len(out.Triangles) != len(mesh.Triangles)+8 {
		t.Errorf("expected %d triangles, got %d", len(mesh.Triangles)+8, len(out.Triangles))
	}
}

func TestExtrudePointsOutward(t *testing.T) {
	mesh := Mesh{
		Points:    []Coord{C(0, 0), C(0, 10), C(10, 0)},
		Triangles: []Triangle{{A: 0, B: 1, C: 2}},
	}
	out := Extrude(mesh, 1)

	// No skirt vertex may land inside the triangle.
	a, b, c := mesh.Points[0], mesh.Points[1], mesh.Points[2]
	nab := b.Sub(a).Right()
	nbc := c.Sub(b).Right()
	nca := a.Sub(c).Right()
	for _, p := range out.Points[3:] {
		if p.Sub(a).Dot(nab) > 0 && p.Sub(b).Dot(nbc) > 0 && p.Sub(c).Dot(nca) > 0 {
			t.Errorf("skirt vertex %v lies inside the triangle", p)
		}
	}
}
