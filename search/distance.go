package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sqrt2 is the cost of one diagonal step.
const Sqrt2 = math.Sqrt2

// Manhattan returns |dx| + |dy|. Admissible and consistent for 4-directional travel.
func Manhattan(a, b grid.Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Octile returns the 8-directional distance with unit straight and √2 diagonal
// steps: |dx-dy| + √2·min(dx,dy).
func Octile(a, b grid.Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}

	return float64(hi-lo) + Sqrt2*float64(lo)
}

// Euclidean returns the straight-line distance.
func Euclidean(a, b grid.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// StepCost returns the cost of a single step along d.
func StepCost(d grid.Direction) float64 {
	if d.IsDiagonal() {
		return Sqrt2
	}

	return 1
}

// Heuristic returns the admissible estimate matching m: Manhattan for
// OnlyStraight, Octile for CanDiagonal.
func Heuristic(m Movement) func(a, b grid.Point) float64 {
	if m == CanDiagonal {
		return Octile
	}

	return Manhattan
}

// PathCost sums the step costs along path.
func PathCost(path []grid.Point) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += StepCost(grid.Toward(path[i-1], path[i]))
	}

	return total
}
