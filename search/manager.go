package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// SearchFunc runs one engine-specific search on validated endpoints and returns
// the result together with the set of closed cells. The set must come from
// mapset.New even when an error is returned.
type SearchFunc func(g *grid.Grid, start, goal grid.Point) (Result, mapset.Set[grid.Point], error)

// Base implements the engine-independent part of Manager. Engines embed it and
// call Init from their constructor.
// Base is safe for concurrent use.
type Base struct {
	name string
	opts Options

	mu     sync.RWMutex
	grid   *grid.Grid
	closed mapset.Set[grid.Point]
}

// Init names the manager and applies opts on top of DefaultOptions.
func (b *Base) Init(name string, opts ...Option) {
	b.name = name
	b.opts = DefaultOptions()
	for _, opt := range opts {
		opt(&b.opts)
	}
	b.closed = mapset.New[grid.Point]()
}

// Name returns the engine identifier.
func (b *Base) Name() string { return b.name }

// Options returns a copy of the effective options.
func (b *Base) Options() Options { return b.opts }

// InitMap builds a fresh random grid and attaches it.
func (b *Base) InitMap(width, height, obstacleCount int) error {
	if err := b.opts.err; err != nil {
		return err
	}
	g, err := grid.Random(width, height, obstacleCount, b.opts.NewRand())
	if err != nil {
		return err
	}

	return b.Attach(g)
}

// Attach binds g and forgets the previous closed list.
func (b *Base) Attach(g *grid.Grid) error {
	if err := b.opts.err; err != nil {
		return err
	}
	if g == nil {
		return ErrNilGrid
	}
	b.mu.Lock()
	b.grid = g
	b.closed = mapset.New[grid.Point]()
	b.mu.Unlock()

	return nil
}

// Grid returns the attached grid, or nil.
func (b *Base) Grid() *grid.Grid {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.grid
}

// NodesMap returns a live read-only view of the grid, or nil before InitMap.
func (b *Base) NodesMap() grid.View {
	g := b.Grid()
	if g == nil {
		return nil
	}

	return g
}

// SetObstacle edits one cell of the attached grid.
func (b *Base) SetObstacle(x, y int, blocked bool) error {
	g := b.Grid()
	if g == nil {
		return ErrNoMap
	}

	return g.SetObstacle(x, y, blocked)
}

// ClosedList returns a snapshot of the cells closed by the most recent search.
// It is empty before the first search and after a rejected call.
func (b *Base) ClosedList() mapset.Set[grid.Point] {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := mapset.New[grid.Point]()
	b.closed.Each(func(p grid.Point) {
		out.Put(p)
	})

	return out
}

// Run validates the endpoints, invokes fn, stores its closed set and reports
// the call to the Recorder.
//
//	ErrOptionViolation  – constructor received a bad Option
//	ErrNoMap            – no grid attached
//	ErrOutOfBounds      – an endpoint is outside the grid
//	ErrObstacleEndpoint – an endpoint is an obstacle
//
// On any of these the closed list becomes empty.
func (b *Base) Run(startX, startY, endX, endY int, fn SearchFunc) (Result, error) {
	began := time.Now()
	res, closed, err := b.run(startX, startY, endX, endY, fn)

	b.mu.Lock()
	b.closed = closed
	b.mu.Unlock()

	if b.opts.Recorder != nil {
		b.opts.Recorder.ObserveSearch(b.name, res, err, time.Since(began))
	}

	return res, err
}

func (b *Base) run(startX, startY, endX, endY int, fn SearchFunc) (Result, mapset.Set[grid.Point], error) {
	empty := mapset.New[grid.Point]()
	if err := b.opts.err; err != nil {
		return Result{}, empty, err
	}
	g := b.Grid()
	if g == nil {
		return Result{}, empty, ErrNoMap
	}
	if !g.IsInMap(startX, startY) || !g.IsInMap(endX, endY) {
		return Result{}, empty, fmt.Errorf("%w: (%d,%d)->(%d,%d) on %d×%d",
			ErrOutOfBounds, startX, startY, endX, endY, g.Width(), g.Height())
	}
	if !g.IsWalkable(startX, startY) || !g.IsWalkable(endX, endY) {
		return Result{}, empty, fmt.Errorf("%w: (%d,%d)->(%d,%d)",
			ErrObstacleEndpoint, startX, startY, endX, endY)
	}

	start, goal := grid.Point{X: startX, Y: startY}, grid.Point{X: endX, Y: endY}
	res, closed, err := fn(g, start, goal)
	if err != nil {
		return Result{Expanded: res.Expanded}, closed, err
	}

	return res, closed, nil
}
