// densitymesh is a CLI utility for converting images into density-driven
// triangle meshes.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/densitymesh/internal/config"
	"github.com/Faultbox/densitymesh/internal/logger"
	"github.com/Faultbox/densitymesh/pkg/densitymap"
	"github.com/Faultbox/densitymesh/pkg/densitymesh"
	"github.com/Faultbox/densitymesh/pkg/imagedensity"
	"github.com/Faultbox/densitymesh/pkg/meshio"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "image":
		cmdImage(args)
	case "mesh":
		cmdMesh(args)
	case "live":
		cmdLive(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`densitymesh - image to density mesh utility

Usage:
  densitymesh <command> [options]

Commands:
  image -input <in> -output <out.png> [options]   Produce density (or steepness) map image
  mesh  -input <in> -output <out> -format <fmt>   Produce density mesh (json, json-pretty, yaml, obj, png)
  live  -input <in> [options]                     Demo: apply random map edits and regenerate live

Run 'densitymesh <command> -h' for command options.

Examples:
  densitymesh image -input terrain.png -output density.png -steepness
  densitymesh mesh -input terrain.png -output mesh.obj -format obj -points-separation 0.5..8
  densitymesh live -input terrain.png -edits 16`)
}

// imageFlags registers the flags shared by every subcommand and returns
// the target variables.
func imageFlags(fs *flag.FlagSet, cfg *config.Config) (input, output *string) {
	input = fs.String("input", "", "Input image path")
	output = fs.String("output", "", "Output file path")
	fs.StringVar(&cfg.Image.DensitySource, "density-source", cfg.Image.DensitySource,
		"Density source channel: luma, luma-alpha, red, green, blue, alpha")
	fs.IntVar(&cfg.Image.Scale, "scale", cfg.Image.Scale, "Integer image downscale factor")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	return input, output
}

// meshFlags registers the generation settings flags on top of the shared
// ones.
func meshFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Generation.PointsSeparation, "points-separation", cfg.Generation.PointsSeparation,
		"Points separation: a number, or MIN..MAX to vary with steepness")
	fs.Float64Var(&cfg.Generation.VisibilityThreshold, "visibility-threshold", cfg.Generation.VisibilityThreshold,
		"Minimum density for a cell to count as visible")
	fs.Float64Var(&cfg.Generation.SteepnessThreshold, "steepness-threshold", cfg.Generation.SteepnessThreshold,
		"Minimum steepness to place an extra point")
	fs.IntVar(&cfg.Generation.MaxIterations, "max-iterations", cfg.Generation.MaxIterations,
		"Retry bound when no point can be placed")
	fs.Float64Var(&cfg.Generation.ExtrudeSize, "extrude-size", cfg.Generation.ExtrudeSize,
		"Border skirt size; 0 disables extrusion")
	fs.BoolVar(&cfg.Generation.KeepInvisibleTriangles, "keep-invisible-triangles", cfg.Generation.KeepInvisibleTriangles,
		"Keep triangles below the visibility threshold")
	fs.Float64Var(&cfg.Generation.UpdateRegionMargin, "update-region-margin", cfg.Generation.UpdateRegionMargin,
		"Margin around update region box; currently unused")
}

// loadConfigFor parses -config ahead of the other flags so file values
// become the flag defaults.
func loadConfigFor(fs *flag.FlagSet, args []string) *config.Config {
	path := ""
	for i, a := range args {
		if (a == "-config" || a == "--config") && i+1 < len(args) {
			path = args[i+1]
		}
	}
	fs.String("config", "", "Path to config file")
	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	return cfg
}

func cmdImage(args []string) {
	fs := flag.NewFlagSet("image", flag.ExitOnError)
	cfg := loadConfigFor(fs, args)
	input, output := imageFlags(fs, cfg)
	steepness := fs.Bool("steepness", false, "Produce steepness image instead of density")
	fs.Parse(args)
	mustInit(cfg)

	m := loadMap(*input, cfg)
	img := imagedensity.ToImage(m, *steepness)
	writePNG(*output, img)
	logger.Info("density image written",
		zap.String("path", *output),
		zap.Int("width", m.UnscaledWidth()),
		zap.Int("height", m.UnscaledHeight()),
	)
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	cfg := loadConfigFor(fs, args)
	input, output := imageFlags(fs, cfg)
	meshFlags(fs, cfg)
	format := fs.String("format", "json", "Output format: json, json-pretty, yaml, obj, png")
	fs.Parse(args)
	mustInit(cfg)

	settings, err := cfg.MeshSettings()
	if err != nil {
		fatal(err)
	}
	m := loadMap(*input, cfg)

	start := time.Now()
	mesh, err := densitymesh.Generate(m, nil, settings)
	if err != nil {
		fatal(err)
	}
	logger.Info("mesh generated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("points", len(mesh.Points)),
		zap.Int("triangles", len(mesh.Triangles)),
	)

	out, err := os.Create(*output)
	if err != nil {
		fatal(err)
	}
	defer out.Close()

	switch *format {
	case "json":
		err = meshio.EncodeJSON(out, &mesh)
	case "json-pretty":
		err = meshio.EncodeJSONIndent(out, &mesh)
	case "yaml":
		err = meshio.EncodeYAML(out, &mesh)
	case "obj":
		err = meshio.EncodeOBJ(out, &mesh)
	case "png":
		err = png.Encode(out, meshio.RenderPNG(&mesh, loadImage(*input)))
	default:
		fatal(fmt.Errorf("unknown format %q", *format))
	}
	if err != nil {
		fatal(err)
	}
}

func cmdLive(args []string) {
	fs := flag.NewFlagSet("live", flag.ExitOnError)
	cfg := loadConfigFor(fs, args)
	input, _ := imageFlags(fs, cfg)
	meshFlags(fs, cfg)
	edits := fs.Int("edits", 8, "Number of random region edits to apply")
	regionSize := fs.Int("region-size", 16, "Edit region size in cells")
	seed := fs.Int64("seed", 1, "Random seed for edits")
	fs.Parse(args)
	mustInit(cfg)

	settings, err := cfg.MeshSettings()
	if err != nil {
		fatal(err)
	}
	m := loadMap(*input, cfg)

	gen := densitymesh.NewGenerator(m, nil, settings, densitymesh.WithLogger(logger.Log))
	if err := gen.ProcessWait(); err != nil {
		fatal(err)
	}
	logger.Info("initial mesh ready",
		zap.Int("points", len(gen.Mesh().Points)),
		zap.Int("triangles", len(gen.Mesh().Triangles)),
	)

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *edits; i++ {
		w := min(*regionSize, m.UnscaledWidth())
		h := min(*regionSize, m.UnscaledHeight())
		col := rng.Intn(m.UnscaledWidth() - w + 1)
		row := rng.Intn(m.UnscaledHeight() - h + 1)
		data := make([]byte, w*h)
		for j := range data {
			data[j] = byte(rng.Intn(256))
		}

		start := time.Now()
		if err := gen.ChangeMap(col, row, w, h, data, settings); err != nil {
			fatal(err)
		}
		if err := gen.ProcessWait(); err != nil {
			fatal(err)
		}
		logger.Info("live edit processed",
			zap.Int("edit", i+1),
			zap.Int("col", col),
			zap.Int("row", row),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("points", len(gen.Mesh().Points)),
			zap.Int("triangles", len(gen.Mesh().Triangles)),
		)
	}
}

// mustInit sets up logging from config, exiting on failure.
func mustInit(cfg *config.Config) {
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
}

// loadMap decodes the input image and converts it to a density map.
func loadMap(path string, cfg *config.Config) *densitymap.Map {
	settings, err := cfg.ImageSettings()
	if err != nil {
		fatal(err)
	}
	m, err := imagedensity.FromImage(loadImage(path), settings)
	if err != nil {
		fatal(err)
	}
	return m
}

// loadImage decodes a PNG or JPEG image from disk.
func loadImage(path string) image.Image {
	if path == "" {
		fatal(fmt.Errorf("missing -input path"))
	}
	f, err := os.Open(path)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		fatal(fmt.Errorf("decoding %s: %w", path, err))
	}
	return img
}

// writePNG encodes an image to disk.
func writePNG(path string, img image.Image) {
	if path == "" {
		fatal(fmt.Errorf("missing -output path"))
	}
	f, err := os.Create(path)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
