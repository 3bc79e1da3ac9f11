package imagedensity

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParseSource(t *testing.T) {
	sources := []Source{SourceLuma, SourceLumaAlpha, SourceRed, SourceGreen, SourceBlue, SourceAlpha}
	for _, s := range sources {
		parsed, err := ParseSource(s.String())
		if err != nil {
			t.Errorf("failed to parse %q: %v", s.String(), err)
			continue
		}
		if parsed != s {
			t.Errorf("round trip changed %v to %v", s, parsed)
		}
	}

	if _, err := ParseSource("chroma"); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}
}

func TestFromImageChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 100, G: 150, B: 200, A: 128})

	// BT.601 luma of (100,150,200) is 140.
	tests := []struct {
		source Source
		want   byte
	}{
		{SourceLuma, 140},
		{SourceLumaAlpha, 140 * 128 / 255},
		{SourceRed, 100},
		{SourceGreen, 150},
		{SourceBlue, 200},
		{SourceAlpha, 128},
	}

	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			m, err := FromImage(img, Settings{Source: tt.source, Scale: 1})
			if err != nil {
				t.Fatalf("failed to convert: %v", err)
			}
			if got := m.Value(0, 0); got != float64(tt.want)/255.0 {
				t.Errorf("expected %d/255, got %f", tt.want, got)
			}
		})
	}
}

func TestFromImageDownscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	m, err := FromImage(img, Settings{Source: SourceLuma, Scale: 2})
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	if m.UnscaledWidth() != 4 || m.UnscaledHeight() != 3 {
		t.Errorf("expected 4x3 map, got %dx%d", m.UnscaledWidth(), m.UnscaledHeight())
	}
	// Mesh coordinates stay in the original image space.
	if m.Width() != 8 || m.Height() != 6 {
		t.Errorf("expected scaled 8x6, got %dx%d", m.Width(), m.Height())
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	img.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	m, err := FromImage(img, Settings{Source: SourceLuma, Scale: 1})
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}
	if m.UnscaledWidth() != 2 || m.UnscaledHeight() != 2 {
		t.Errorf("expected 2x2 map, got %dx%d", m.UnscaledWidth(), m.UnscaledHeight())
	}
	if m.Value(0, 0) != 1 {
		t.Errorf("expected 1 at (0,0) from offset image, got %f", m.Value(0, 0))
	}
}

func TestToImage(t *testing.T) {
	m, err := FromImage(whiteImage(3, 2), Settings{Source: SourceLuma, Scale: 1})
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}

	img := ToImage(m, false)
	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Errorf("expected 3x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	for _, p := range img.Pix {
		if p != 255 {
			t.Errorf("expected white pixel, got %d", p)
			break
		}
	}

	// A constant field has zero steepness everywhere.
	steep := ToImage(m, true)
	for _, p := range steep.Pix {
		if p != 0 {
			t.Errorf("expected black steepness pixel, got %d", p)
			break
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Source != SourceLumaAlpha {
		t.Errorf("expected luma-alpha default, got %v", s.Source)
	}
	if s.Scale != 1 {
		t.Errorf("expected scale 1, got %d", s.Scale)
	}
}

func whiteImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
