package densitymesh

import (
	"errors"

	"github.com/Faultbox/densitymesh/pkg/densitymap"
)

// Generate runs the full density mesh pipeline over a map: steepness
// analysis, point sampling, triangulation, visibility pruning and optional
// extrusion. Degenerate geometry (too few or collinear points) is not an
// error: the result keeps the sampled points with an empty triangle list.
// The only failure mode is invalid settings.
func Generate(m *densitymap.Map, seeds []Coord, settings Settings) (Mesh, error) {
	if err := settings.Validate(); err != nil {
		return Mesh{}, err
	}
	steep := densitymap.Analyze(m)
	points := SamplePoints(m, steep, seeds, settings)
	mesh, err := Triangulate(points)
	if err != nil {
		if errors.Is(err, ErrDegenerateGeometry) {
			return mesh, nil
		}
		return Mesh{}, err
	}
	mesh = PruneInvisible(mesh, m, settings)
	mesh = Extrude(mesh, settings.ExtrudeSize)
	return mesh, nil
}
