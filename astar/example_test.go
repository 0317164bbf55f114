package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
)

// ExampleManager_FindPath searches an empty 5×5 map corner to corner.
func ExampleManager_FindPath() {
	m := astar.New()
	if err := m.InitMap(5, 5, 0); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := m.FindPath(0, 0, 4, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, len(res.Path), res.Cost)
	// Output: true 9 8
}
