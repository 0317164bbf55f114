// Package grid defines core types, directions, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a width or height that is not strictly positive.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrNegativeObstacles indicates a negative obstacle count.
	ErrNegativeObstacles = errors.New("grid: obstacle count must be non-negative")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrEmptyGrid indicates an ASCII literal with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in an ASCII literal.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")
)

// NodeType classifies a cell as walkable or blocked.
type NodeType uint8

const (
	// Open cells may be entered by any engine.
	Open NodeType = iota
	// Obstacle cells are never entered.
	Obstacle
)

// String implements fmt.Stringer.
func (t NodeType) String() string {
	switch t {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// Glyphs used by Parse and (*Grid).String.
const (
	GlyphOpen     = '.'
	GlyphObstacle = '#'
)

// Point is an integer cell position.
type Point struct {
	X, Y int
}

// Add returns p moved one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit offset; each component is -1, 0 or 1.
type Direction struct {
	DX, DY int
}

// Compass directions. North is +Y.
var (
	None      = Direction{0, 0}
	North     = Direction{0, 1}
	East      = Direction{1, 0}
	South     = Direction{0, -1}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	SouthEast = Direction{1, -1}
	SouthWest = Direction{-1, -1}
	NorthWest = Direction{-1, 1}
)

// Orthogonal lists the four straight directions in probing order.
var Orthogonal = [4]Direction{North, East, South, West}

// Diagonals lists the four diagonal directions in probing order.
var Diagonals = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// IsDiagonal reports whether both components are non-zero.
func (d Direction) IsDiagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// IsZero reports whether d is the null direction.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Left returns d rotated 90° counter-clockwise: (x, y) → (-y, x).
func (d Direction) Left() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// Right returns d rotated 90° clockwise: (x, y) → (y, -x).
func (d Direction) Right() Direction {
	return Direction{DX: d.DY, DY: -d.DX}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Toward returns the per-axis sign of to-from, i.e. the delta clamped to [-1, 1].
func Toward(from, to Point) Direction {
	return Direction{DX: sign(to.X - from.X), DY: sign(to.Y - from.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Cell is the read-only view of one grid position.
type Cell struct {
	Point
	Type NodeType
}

// Walkable reports whether the cell is Open.
func (c Cell) Walkable() bool {
	return c.Type == Open
}

// View is the read-only grid surface exposed to renderers, editors and tests.
type View interface {
	Width() int
	Height() int
	IsInMap(x, y int) bool
	IsWalkable(x, y int) bool
	At(x, y int) (Cell, error)
	Cells() []Cell
}
