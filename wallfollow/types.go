package wallfollow

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the engine identifier reported by Manager.Name.
const Name = "wallfollow"

// State of an explorer.
type State uint8

const (
	// Free explorers head straight for the goal.
	Free State = iota
	// Crawling explorers follow an obstacle contour.
	Crawling
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Crawling {
		return "crawling"
	}
	return "free"
}

// Hand is the side a crawling explorer keeps against the wall.
type Hand uint8

const (
	// Left prefers left turns.
	Left Hand = iota
	// Right prefers right turns.
	Right
)

// String implements fmt.Stringer.
func (h Hand) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

// Explorer is one branch of the search.
type Explorer struct {
	At       grid.Point
	State    State
	Hand     Hand
	LastMove grid.Direction
}

// turns is the counter-clockwise ring [N, W, S, E] the hand rule rotates over.
var turns = [4]grid.Direction{grid.North, grid.West, grid.South, grid.East}

// Cost records the generation in which a cell was first entered.
type Cost struct {
	Generation int
}

// order is required by search.Context; the wall-follower never uses the open list.
type order struct{}

func (order) Zero() Cost              { return Cost{Generation: -1} }
func (order) Compare(a, b Cost) int   { return a.Generation - b.Generation }
func (order) Priority(c Cost) float64 { return float64(c.Generation) }

var _ search.Ordering[Cost] = order{}

// primary returns the unit axis direction from p toward goal along the axis with
// the larger distance; ties go to the vertical axis.
func primary(p, goal grid.Point) grid.Direction {
	dx, dy := goal.X-p.X, goal.Y-p.Y
	t := grid.Toward(p, goal)
	if abs(dx) > abs(dy) {
		return grid.Direction{DX: t.DX}
	}

	return grid.Direction{DY: t.DY}
}

// handOrder lists the four moves a crawler tries, relative to its last move:
// toward its hand, straight, away from its hand, reverse.
func handOrder(last grid.Direction, hand Hand) [4]grid.Direction {
	idx := 0
	for i, d := range turns {
		if d == last {
			idx = i
			break
		}
	}
	var out [4]grid.Direction
	for i := range out {
		if hand == Left {
			out[i] = turns[(idx+1-i+4)%4]
		} else {
			out[i] = turns[(idx-1+i+4)%4]
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
