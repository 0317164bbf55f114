package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleManager_FindPath routes around a wall on a small map.
func ExampleManager_FindPath() {
	// 1) Build the map from an ASCII literal; row i is y = i.
	g := grid.MustParse(
		"...",
		"##.",
		"...",
	)

	// 2) Attach it to a 4-connected Dijkstra manager.
	m := dijkstra.New()
	if err := m.Attach(g); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Search from the top-left to the bottom-left corner.
	res, err := m.FindPath(0, 0, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Cost)
	fmt.Println(res.Path)
	// Output:
	// true 6
	// [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
}
