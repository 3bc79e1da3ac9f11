// Package meshio serializes density meshes to interchange formats and
// renders them for inspection.
package meshio

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/densitymesh/pkg/densitymesh"
)

// EncodeJSON writes the mesh as compact JSON.
func EncodeJSON(w io.Writer, mesh *densitymesh.Mesh) error {
	return json.NewEncoder(w).Encode(mesh)
}

// EncodeJSONIndent writes the mesh as indented JSON.
func EncodeJSONIndent(w io.Writer, mesh *densitymesh.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mesh)
}

// EncodeYAML writes the mesh as YAML.
func EncodeYAML(w io.Writer, mesh *densitymesh.Mesh) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(mesh); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeOBJ writes the mesh in Wavefront OBJ format: vertices on the XY
// plane (z = 0) and 1-based triangular faces.
func EncodeOBJ(w io.Writer, mesh *densitymesh.Mesh) error {
	for _, p := range mesh.Points {
		if _, err := fmt.Fprintf(w, "v %g %g 0\n", p.X, p.Y); err != nil {
			return err
		}
	}
	for _, t := range mesh.Triangles {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", t.A+1, t.B+1, t.C+1); err != nil {
			return err
		}
	}
	return nil
}
