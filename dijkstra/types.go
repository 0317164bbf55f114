package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridpath/search"
)

// Name is the engine identifier reported by Manager.Name.
const Name = "dijkstra"

// Cost is the Dijkstra node payload: the best known distance from the start.
type Cost struct {
	G float64
}

// order sorts open entries by G ascending.
type order struct{}

// Zero marks an unreached cell with G = +∞.
func (order) Zero() Cost { return Cost{G: math.Inf(1)} }

// Compare orders by G.
func (order) Compare(a, b Cost) int {
	switch {
	case a.G < b.G:
		return -1
	case a.G > b.G:
		return 1
	default:
		return 0
	}
}

// Priority reports G to enqueue hooks.
func (order) Priority(c Cost) float64 { return c.G }

var _ search.Ordering[Cost] = order{}
