package densitymesh

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/densitymesh/pkg/densitymap"
)

// Status describes the state of a Generator.
type Status int

const (
	// StatusIdle means the committed mesh is up to date with the map.
	StatusIdle Status = iota
	// StatusDirty means the map has edits not yet reflected in the mesh.
	StatusDirty
	// StatusRunning means a generation run is in flight.
	StatusRunning
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDirty:
		return "dirty"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger attaches a logger for run lifecycle events. The default
// discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// runHandle tracks one in-flight generation run.
type runHandle struct {
	done chan struct{}
	err  error
}

// Generator is a stateful wrapper around Generate for live map editing. It
// owns a density map and the last committed mesh, accepts sub-region edits
// through ChangeMap, and regenerates the whole mesh on demand. Each edit
// marks the generator dirty; Process launches at most one background run at
// a time (single-flight), and edits arriving while a run executes coalesce
// into the map for the next run. Partial retriangulation of only the edited
// region is deliberately not attempted; every run regenerates the full
// mesh.
type Generator struct {
	mu       sync.Mutex
	field    *densitymap.Map
	seeds    []Coord
	settings Settings
	mesh     *Mesh
	lastErr  error
	dirty    bool
	run      *runHandle
	log      *zap.Logger
}

// NewGenerator creates a generator over the given map, seed points and
// settings. It starts dirty: no mesh exists until the first successful
// Process or ProcessWait.
func NewGenerator(field *densitymap.Map, seeds []Coord, settings Settings, opts ...Option) *Generator {
	g := &Generator{
		field:    field,
		seeds:    append([]Coord(nil), seeds...),
		settings: settings,
		dirty:    true,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Map returns the current density map. The caller must not mutate it; use
// ChangeMap for edits.
func (g *Generator) Map() *densitymap.Map {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.field
}

// Mesh returns the last committed mesh, or nil if no run has succeeded yet.
func (g *Generator) Mesh() *Mesh {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mesh
}

// Err returns the outcome of the most recently finished run.
func (g *Generator) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

// Status reports whether the generator is idle, dirty or running.
func (g *Generator) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.run != nil {
		return StatusRunning
	}
	if g.dirty {
		return StatusDirty
	}
	return StatusIdle
}

// ChangeMap overwrites a sub-rectangle of the map with raw 8-bit samples
// and stores the settings to use on the next run. The edit is accepted
// while a run is in flight but only picked up by the next one. Fails with
// densitymap.ErrInvalidRegion or densitymap.ErrWrongDataLength without
// touching generator state.
func (g *Generator) ChangeMap(col, row, width, height int, data []byte, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.field.Change(col, row, width, height, data); err != nil {
		return err
	}
	g.settings = settings
	g.dirty = true
	return nil
}

// Process starts a background generation run if the generator is dirty and
// none is in flight, and returns without blocking. The returned status is
// StatusIdle when there was nothing to do, otherwise StatusRunning (either
// a fresh run or one already executing that will satisfy this call).
func (g *Generator) Process() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.startLocked()
}

// ProcessWait is Process followed by waiting for the in-flight run to
// finish; it returns that run's outcome. When the generator is already
// idle it returns nil immediately.
func (g *Generator) ProcessWait() error {
	g.mu.Lock()
	g.startLocked()
	run := g.run
	g.mu.Unlock()
	if run == nil {
		return nil
	}
	<-run.done
	return run.err
}

// startLocked launches a run when dirty and none is active. Caller holds
// g.mu.
func (g *Generator) startLocked() Status {
	if g.run != nil {
		return StatusRunning
	}
	if !g.dirty {
		return StatusIdle
	}
	g.dirty = false
	run := &runHandle{done: make(chan struct{})}
	g.run = run
	// Snapshot so edits arriving mid-run cannot affect this run.
	field := g.field.Clone()
	seeds := append([]Coord(nil), g.seeds...)
	settings := g.settings
	go g.execute(run, field, seeds, settings)
	return StatusRunning
}

// generatePipeline is indirected so tests can observe run scheduling.
var generatePipeline = Generate

// execute runs the pipeline and commits the result.
func (g *Generator) execute(run *runHandle, field *densitymap.Map, seeds []Coord, settings Settings) {
	start := time.Now()
	mesh, err := generatePipeline(field, seeds, settings)

	g.mu.Lock()
	if err == nil {
		g.mesh = &mesh
	}
	g.lastErr = err
	g.run = nil
	g.mu.Unlock()

	// Publish the outcome before waking waiters.
	run.err = err
	close(run.done)

	if err != nil {
		g.log.Warn("generation run failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	g.log.Debug("generation run finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("points", len(mesh.Points)),
		zap.Int("triangles", len(mesh.Triangles)),
	)
}
