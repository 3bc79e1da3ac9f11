package meshio

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Faultbox/densitymesh/pkg/densitymesh"
)

// RenderPNG draws the mesh wireframe over a background image and returns
// the composite. Pass the source image the density map came from to get
// the usual edge-overlay visualization.
func RenderPNG(mesh *densitymesh.Mesh, background image.Image) image.Image {
	dc := gg.NewContextForImage(background)
	dc.SetRGBA(1, 0, 0, 1)
	dc.SetLineWidth(1)
	for _, t := range mesh.Triangles {
		a := mesh.Points[t.A]
		b := mesh.Points[t.B]
		c := mesh.Points[t.C]
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.DrawLine(b.X, b.Y, c.X, c.Y)
		dc.DrawLine(c.X, c.Y, a.X, a.Y)
	}
	dc.Stroke()
	return dc.Image()
}
