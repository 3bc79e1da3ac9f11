package densitymesh

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Generation errors.
var (
	// ErrInvalidSettings reports settings outside their valid ranges.
	ErrInvalidSettings = errors.New("invalid generation settings")
	// ErrDegenerateGeometry reports a point set that cannot be
	// triangulated (fewer than 3 distinct points, or all collinear).
	ErrDegenerateGeometry = errors.New("degenerate geometry: cannot triangulate")
)

// Separation is the minimum distance between sampled points. A constant
// separation has Min == Max; a range adapts to local steepness, with
// steeper areas using values closer to Min.
type Separation struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// ConstantSeparation returns a separation fixed at v.
func ConstantSeparation(v float64) Separation {
	return Separation{Min: v, Max: v}
}

// RangeSeparation returns a separation varying between min and max
// depending on steepness.
func RangeSeparation(min, max float64) Separation {
	return Separation{Min: min, Max: max}
}

// IsRange reports whether the separation adapts to steepness.
func (s Separation) IsRange() bool {
	return s.Min != s.Max
}

// Maximum returns the largest possible separation.
func (s Separation) Maximum() float64 {
	return s.Max
}

// At returns the required separation at the given local steepness.
// Steepness 0 maps to Max, steepness 1 (and above) maps to Min.
func (s Separation) At(steepness float64) float64 {
	if !s.IsRange() {
		return s.Min
	}
	if steepness < 0 {
		steepness = 0
	} else if steepness > 1 {
		steepness = 1
	}
	return s.Max + (s.Min-s.Max)*steepness
}

// String formats the separation as "N" or "MIN..MAX".
func (s Separation) String() string {
	if !s.IsRange() {
		return strconv.FormatFloat(s.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("%g..%g", s.Min, s.Max)
}

// ParseSeparation parses "N" or "MIN..MAX".
func ParseSeparation(s string) (Separation, error) {
	if from, to, ok := strings.Cut(s, ".."); ok {
		min, err := strconv.ParseFloat(from, 64)
		if err != nil {
			return Separation{}, fmt.Errorf("parsing separation %q: %w", s, err)
		}
		max, err := strconv.ParseFloat(to, 64)
		if err != nil {
			return Separation{}, fmt.Errorf("parsing separation %q: %w", s, err)
		}
		return RangeSeparation(min, max), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Separation{}, fmt.Errorf("parsing separation %q: %w", s, err)
	}
	return ConstantSeparation(v), nil
}

// Settings configures one mesh generation run.
type Settings struct {
	// Separation is the minimum distance between sampled points.
	Separation Separation `json:"points_separation" yaml:"points_separation"`
	// VisibilityThreshold is the minimum density for a cell to count as
	// visible; triangles mostly covering invisible cells are pruned.
	VisibilityThreshold float64 `json:"visibility_threshold" yaml:"visibility_threshold"`
	// SteepnessThreshold is the minimum steepness that justifies inserting
	// an extra point.
	SteepnessThreshold float64 `json:"steepness_threshold" yaml:"steepness_threshold"`
	// MaxIterations bounds retries when no candidate point can be placed.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
	// ExtrudeSize adds a border skirt of this size; 0 disables extrusion.
	ExtrudeSize float64 `json:"extrude_size" yaml:"extrude_size"`
	// KeepInvisibleTriangles disables visibility pruning.
	KeepInvisibleTriangles bool `json:"keep_invisible_triangles" yaml:"keep_invisible_triangles"`
	// UpdateRegionMargin is reserved and currently has no effect.
	UpdateRegionMargin float64 `json:"update_region_margin" yaml:"update_region_margin"`
}

// DefaultSettings returns the standard generation settings.
func DefaultSettings() Settings {
	return Settings{
		Separation:          ConstantSeparation(10),
		VisibilityThreshold: 0.01,
		SteepnessThreshold:  0.01,
		MaxIterations:       32,
	}
}

// Validate checks that all settings are inside their valid ranges.
func (s Settings) Validate() error {
	if s.Separation.Min <= 0 || s.Separation.Max < s.Separation.Min {
		return fmt.Errorf("%w: points separation %s", ErrInvalidSettings, s.Separation)
	}
	if s.VisibilityThreshold < 0 {
		return fmt.Errorf("%w: visibility threshold %g", ErrInvalidSettings, s.VisibilityThreshold)
	}
	if s.SteepnessThreshold < 0 {
		return fmt.Errorf("%w: steepness threshold %g", ErrInvalidSettings, s.SteepnessThreshold)
	}
	if s.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidSettings, s.MaxIterations)
	}
	if s.ExtrudeSize < 0 {
		return fmt.Errorf("%w: extrude size %g", ErrInvalidSettings, s.ExtrudeSize)
	}
	return nil
}
