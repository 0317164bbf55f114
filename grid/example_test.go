// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse builds a small map from an ASCII literal and edits it in place.
// Row i of the literal is y = i; '#' marks an obstacle.
func ExampleParse() {
	g, _ := grid.Parse(
		"....",
		".##.",
		"....",
	)
	fmt.Println("size:", g.Width(), "x", g.Height())
	fmt.Println("obstacles:", g.ObstacleCount())
	fmt.Println("walkable (1,1):", g.IsWalkable(1, 1))

	_, _ = g.Toggle(1, 1)
	_ = g.SetObstacle(0, 2, true)
	fmt.Println(g)

	// Output:
	// size: 4 x 3
	// obstacles: 2
	// walkable (1,1): false
	// ....
	// ..#.
	// #...
}
