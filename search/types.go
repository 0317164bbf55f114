package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by managers.
var (
	// ErrNoMap indicates a call that needs a grid before InitMap or Attach.
	ErrNoMap = errors.New("search: map not initialized")

	// ErrNilGrid indicates Attach was called with a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds indicates a start or end coordinate outside the grid.
	ErrOutOfBounds = errors.New("search: start or end cell out of bounds")

	// ErrObstacleEndpoint indicates a start or end cell that is an obstacle.
	ErrObstacleEndpoint = errors.New("search: start or end cell is an obstacle")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Movement selects the neighborhood an engine travels in.
type Movement uint8

const (
	// OnlyStraight allows the four orthogonal steps.
	OnlyStraight Movement = iota
	// CanDiagonal adds the four diagonal steps; a diagonal step is forbidden
	// when both orthogonal cells flanking it are blocked.
	CanDiagonal
)

// String implements fmt.Stringer.
func (m Movement) String() string {
	switch m {
	case OnlyStraight:
		return "only-straight"
	case CanDiagonal:
		return "can-diagonal"
	default:
		return fmt.Sprintf("Movement(%d)", uint8(m))
	}
}

var (
	fourSteps  = grid.Orthogonal[:]
	eightSteps = append(append([]grid.Direction{}, grid.Orthogonal[:]...), grid.Diagonals[:]...)
)

// Directions returns the unit steps of m: orthogonals first, then diagonals.
// The returned slice is shared and must not be modified.
func (m Movement) Directions() []grid.Direction {
	if m == CanDiagonal {
		return eightSteps
	}

	return fourSteps
}

// Adjacent reports whether b is one step from a under m.
func (m Movement) Adjacent(a, b grid.Point) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if m == CanDiagonal {
		return dx <= 1 && dy <= 1 && dx+dy > 0
	}

	return dx+dy == 1
}

// Result is the outcome of one FindPath call.
//
//	Path     – cells from start to goal inclusive; nil when Found is false.
//	Cost     – sum of step distances along Path (1 per orthogonal, √2 per diagonal).
//	Found    – whether the goal was reached.
//	Expanded – number of cells closed during the search.
type Result struct {
	Path     []grid.Point
	Cost     float64
	Found    bool
	Expanded int
}

// Recorder observes completed FindPath calls. err is non-nil only for rejected
// or cancelled calls; a miss is reported as res.Found == false with a nil err.
type Recorder interface {
	ObserveSearch(engine string, res Result, err error, elapsed time.Duration)
}

// Manager is the contract every engine implements and every external tool
// (renderer, editor, CLI, tests) consumes.
type Manager interface {
	// Name identifies the engine ("dijkstra", "astar", "jps", "wallfollow").
	Name() string

	// InitMap (re)builds the grid: width×height cells, all Open, then
	// obstacleCount random placements. Duplicates collapse.
	InitMap(width, height, obstacleCount int) error

	// Attach binds an existing grid, e.g. to run several engines on one map.
	Attach(g *grid.Grid) error

	// FindPath searches from (startX,startY) to (endX,endY).
	FindPath(startX, startY, endX, endY int) (Result, error)

	// NodesMap returns a read-only live view of the grid, or nil before InitMap.
	NodesMap() grid.View

	// SetObstacle edits one cell of the attached grid.
	SetObstacle(x, y int, blocked bool) error

	// ClosedList returns a snapshot of the cells closed by the most recent search.
	ClosedList() mapset.Set[grid.Point]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
