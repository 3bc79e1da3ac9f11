// Package imagedensity converts images to density maps and back. A chosen
// channel of the source image becomes the scalar field, optionally
// downscaled by an integer factor.
package imagedensity

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/densitymesh/pkg/densitymap"
)

// ErrUnknownSource reports an unrecognized density source name.
var ErrUnknownSource = errors.New("unknown density source")

// Source selects which image channel drives the density map.
type Source int

// Density sources.
const (
	SourceLuma Source = iota
	SourceLumaAlpha
	SourceRed
	SourceGreen
	SourceBlue
	SourceAlpha
)

// String returns the kebab-case source name used by config and CLI.
func (s Source) String() string {
	switch s {
	case SourceLuma:
		return "luma"
	case SourceLumaAlpha:
		return "luma-alpha"
	case SourceRed:
		return "red"
	case SourceGreen:
		return "green"
	case SourceBlue:
		return "blue"
	case SourceAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseSource parses a kebab-case source name.
func ParseSource(name string) (Source, error) {
	switch name {
	case "luma":
		return SourceLuma, nil
	case "luma-alpha":
		return SourceLumaAlpha, nil
	case "red":
		return SourceRed, nil
	case "green":
		return SourceGreen, nil
	case "blue":
		return SourceBlue, nil
	case "alpha":
		return SourceAlpha, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}

// Settings configures image-to-density conversion.
type Settings struct {
	// Source is the channel that becomes the density value.
	Source Source
	// Scale downsamples the image by this integer factor before
	// conversion; the density map keeps it so mesh coordinates stay in
	// original image space.
	Scale int
}

// DefaultSettings returns luma-alpha extraction at full resolution.
func DefaultSettings() Settings {
	return Settings{Source: SourceLumaAlpha, Scale: 1}
}

// FromImage builds a density map from an image using the given settings.
func FromImage(img image.Image, settings Settings) (*densitymap.Map, error) {
	scale := settings.Scale
	if scale < 1 {
		scale = 1
	}
	if scale > 1 {
		img = downscale(img, scale)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			data[y*w+x] = channelValue(c, settings.Source)
		}
	}
	return densitymap.New(w, h, scale, data)
}

// ToImage renders the map's density values (or its steepness when steepness
// is true) as a grayscale image at unscaled resolution.
func ToImage(m *densitymap.Map, steepness bool) *image.Gray {
	values := m.Values()
	if steepness {
		values = densitymap.Analyze(m).Values()
	}
	img := image.NewGray(image.Rect(0, 0, m.UnscaledWidth(), m.UnscaledHeight()))
	for i, v := range values {
		g := v * 255
		if g > 255 {
			g = 255
		}
		img.Pix[i] = uint8(g)
	}
	return img
}

// channelValue extracts the configured channel from a non-premultiplied
// pixel.
func channelValue(c color.NRGBA, source Source) byte {
	switch source {
	case SourceLumaAlpha:
		return uint8(uint32(luma(c)) * uint32(c.A) / 255)
	case SourceRed:
		return c.R
	case SourceGreen:
		return c.G
	case SourceBlue:
		return c.B
	case SourceAlpha:
		return c.A
	default:
		return luma(c)
	}
}

// luma uses the BT.601 weights, matching image/color's grayscale model.
func luma(c color.NRGBA) byte {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

// downscale resizes the image to 1/factor using Catmull-Rom resampling.
func downscale(img image.Image, factor int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx() / factor
	h := bounds.Dy() / factor
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
