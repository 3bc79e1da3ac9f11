package densitymesh

import (
	"math"

	"github.com/Faultbox/densitymesh/pkg/densitymap"
)

// PruneInvisible removes triangles whose covered area is mostly invisible:
// a triangle is kept iff more than half of the integer sample points inside
// it have a density above the visibility threshold. Vertices left without
// any triangle are dropped and indices renumbered, except when no triangle
// survives, in which case the vertices are kept as a valid-but-empty
// result. A no-op when KeepInvisibleTriangles is set.
func PruneInvisible(mesh Mesh, m *densitymap.Map, settings Settings) Mesh {
	if settings.KeepInvisibleTriangles {
		return mesh
	}
	kept := make([]Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		if triangleVisible(mesh.Points[t.A], mesh.Points[t.B], mesh.Points[t.C], m, settings.VisibilityThreshold) {
			kept = append(kept, t)
		}
	}
	return compact(mesh.Points, kept)
}

// triangleVisible rasterizes the triangle's bounding box and counts sample
// points inside the triangle whose density exceeds the threshold.
func triangleVisible(a, b, c Coord, m *densitymap.Map, threshold float64) bool {
	fx := int(math.Min(a.X, math.Min(b.X, c.X)))
	fy := int(math.Min(a.Y, math.Min(b.Y, c.Y)))
	tx := int(math.Max(a.X, math.Max(b.X, c.X)))
	ty := int(math.Max(a.Y, math.Max(b.Y, c.Y)))
	nab := b.Sub(a).Right()
	nbc := c.Sub(b).Right()
	nca := a.Sub(c).Right()
	var samples, visible int
	for y := fy; y <= ty; y++ {
		for x := fx; x <= tx; x++ {
			p := C(float64(x), float64(y))
			if p.Sub(a).Dot(nab) >= 0 && p.Sub(b).Dot(nbc) >= 0 && p.Sub(c).Dot(nca) >= 0 {
				samples++
				if m.ValueAt(x, y) > threshold {
					visible++
				}
			}
		}
	}
	if samples == 0 {
		return false
	}
	return float64(visible)/float64(samples) > 0.5
}
