package search

import "math"

// Estimate is the node payload of the heuristic engines (A*, JPS).
//
//	G – cost of the best known path from the start
//	H – heuristic estimate to the goal
//	F – G + H
type Estimate struct {
	G, H, F float64
}

// EstimateOrder sorts open entries by F ascending, ties by H ascending.
type EstimateOrder struct{}

// Zero marks an unreached cell.
func (EstimateOrder) Zero() Estimate {
	inf := math.Inf(1)
	return Estimate{G: inf, F: inf}
}

// Compare orders by F, then H.
func (EstimateOrder) Compare(a, b Estimate) int {
	switch {
	case a.F < b.F:
		return -1
	case a.F > b.F:
		return 1
	case a.H < b.H:
		return -1
	case a.H > b.H:
		return 1
	default:
		return 0
	}
}

// Priority reports F to enqueue hooks.
func (EstimateOrder) Priority(c Estimate) float64 { return c.F }

var _ Ordering[Estimate] = EstimateOrder{}
