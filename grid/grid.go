package grid

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// Grid is a W×H map of cells stored row-major (index = y*Width + x).
// It is safe for concurrent use; dimensions never change after construction.
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	layer  []NodeType
}

// New constructs an all-Open grid.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		layer:  make([]NodeType, width*height),
	}, nil
}

// Random constructs a grid and scatters obstacleCount obstacle placements at
// uniformly random positions drawn from rng. Placements landing on an already
// blocked cell collapse, so the effective obstacle count may be lower.
// A nil rng falls back to a deterministic default stream.
// Complexity: O(W×H + obstacleCount).
func Random(width, height, obstacleCount int, rng *rand.Rand) (*Grid, error) {
	if obstacleCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeObstacles, obstacleCount)
	}
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	g.Scatter(obstacleCount, rng)

	return g, nil
}

// Scatter blocks count uniformly random cells and returns how many cells
// actually changed from Open to Obstacle.
func (g *Grid) Scatter(count int, rng *rand.Rand) int {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := 0
	for i := 0; i < count; i++ {
		x := rng.Intn(g.width)
		y := rng.Intn(g.height)
		idx := g.index(x, y)
		if g.layer[idx] != Obstacle {
			g.layer[idx] = Obstacle
			changed++
		}
	}

	return changed
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.width * g.height }

// IsInMap reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) IsInMap(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWalkable reports whether (x,y) is inside the grid and Open.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.IsInMap(x, y) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.layer[g.index(x, y)] == Open
}

// At returns the cell at (x,y).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.IsInMap(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Cell{Point: Point{X: x, Y: y}, Type: g.layer[g.index(x, y)]}, nil
}

// SetObstacle marks (x,y) blocked or open.
func (g *Grid) SetObstacle(x, y int, blocked bool) error {
	if !g.IsInMap(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if blocked {
		g.layer[g.index(x, y)] = Obstacle
	} else {
		g.layer[g.index(x, y)] = Open
	}

	return nil
}

// Toggle flips (x,y) between Open and Obstacle and returns the new type.
func (g *Grid) Toggle(x, y int) (NodeType, error) {
	if !g.IsInMap(x, y) {
		return Open, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.index(x, y)
	if g.layer[idx] == Obstacle {
		g.layer[idx] = Open
	} else {
		g.layer[idx] = Obstacle
	}

	return g.layer[idx], nil
}

// ClearObstacles opens every cell.
func (g *Grid) ClearObstacles() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.layer {
		g.layer[i] = Open
	}
}

// ObstacleCount returns the number of blocked cells.
func (g *Grid) ObstacleCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, t := range g.layer {
		if t == Obstacle {
			n++
		}
	}

	return n
}

// Cells returns a snapshot of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([]Cell, len(g.layer))
	for i, t := range g.layer {
		cells[i] = Cell{Point: g.coordinate(i), Type: t}
	}

	return cells
}

// CopyLayer copies the obstacle layer into dst, growing it when needed,
// and returns the filled slice. Searches use it to work on a private snapshot.
func (g *Grid) CopyLayer(dst []NodeType) []NodeType {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if cap(dst) < len(g.layer) {
		dst = make([]NodeType, len(g.layer))
	}
	dst = dst[:len(g.layer)]
	copy(dst, g.layer)

	return dst
}

// Index maps (x,y) to its row-major index. The caller must bounds-check first.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return g.index(x, y)
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return g.coordinate(idx)
}

// String renders the grid using GlyphOpen and GlyphObstacle, row y=0 first.
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.layer[g.index(x, y)] == Obstacle {
				sb.WriteByte(GlyphObstacle)
			} else {
				sb.WriteByte(GlyphOpen)
			}
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

var _ View = (*Grid)(nil)
