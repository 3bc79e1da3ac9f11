// Package config handles tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/densitymesh/pkg/densitymesh"
	"github.com/Faultbox/densitymesh/pkg/imagedensity"
)

// Config holds all densitymesh tool settings.
type Config struct {
	Image      ImageConfig      `yaml:"image"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ImageConfig holds image-to-density conversion settings.
type ImageConfig struct {
	DensitySource string `yaml:"density_source"` // luma, luma-alpha, red, green, blue, alpha
	Scale         int    `yaml:"scale"`
}

// GenerationConfig holds mesh generation settings.
type GenerationConfig struct {
	PointsSeparation       string  `yaml:"points_separation"` // "N" or "MIN..MAX"
	VisibilityThreshold    float64 `yaml:"visibility_threshold"`
	SteepnessThreshold     float64 `yaml:"steepness_threshold"`
	MaxIterations          int     `yaml:"max_iterations"`
	ExtrudeSize            float64 `yaml:"extrude_size"`
	KeepInvisibleTriangles bool    `yaml:"keep_invisible_triangles"`
	UpdateRegionMargin     float64 `yaml:"update_region_margin"` // reserved, unused
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	gen := densitymesh.DefaultSettings()
	img := imagedensity.DefaultSettings()
	return &Config{
		Image: ImageConfig{
			DensitySource: img.Source.String(),
			Scale:         img.Scale,
		},
		Generation: GenerationConfig{
			PointsSeparation:       gen.Separation.String(),
			VisibilityThreshold:    gen.VisibilityThreshold,
			SteepnessThreshold:     gen.SteepnessThreshold,
			MaxIterations:          gen.MaxIterations,
			ExtrudeSize:            gen.ExtrudeSize,
			KeepInvisibleTriangles: gen.KeepInvisibleTriangles,
			UpdateRegionMargin:     gen.UpdateRegionMargin,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MeshSettings converts the generation section to validated engine
// settings.
func (c *Config) MeshSettings() (densitymesh.Settings, error) {
	sep, err := densitymesh.ParseSeparation(c.Generation.PointsSeparation)
	if err != nil {
		return densitymesh.Settings{}, err
	}
	s := densitymesh.Settings{
		Separation:             sep,
		VisibilityThreshold:    c.Generation.VisibilityThreshold,
		SteepnessThreshold:     c.Generation.SteepnessThreshold,
		MaxIterations:          c.Generation.MaxIterations,
		ExtrudeSize:            c.Generation.ExtrudeSize,
		KeepInvisibleTriangles: c.Generation.KeepInvisibleTriangles,
		UpdateRegionMargin:     c.Generation.UpdateRegionMargin,
	}
	if err := s.Validate(); err != nil {
		return densitymesh.Settings{}, err
	}
	return s, nil
}

// ImageSettings converts the image section to conversion settings.
func (c *Config) ImageSettings() (imagedensity.Settings, error) {
	source, err := imagedensity.ParseSource(c.Image.DensitySource)
	if err != nil {
		return imagedensity.Settings{}, err
	}
	if c.Image.Scale < 1 {
		return imagedensity.Settings{}, fmt.Errorf("image scale must be >= 1, got %d", c.Image.Scale)
	}
	return imagedensity.Settings{Source: source, Scale: c.Image.Scale}, nil
}
