package jps_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleManager_FindPath compares the two movement modes on the same map.
func ExampleManager_FindPath() {
	g := grid.MustParse(
		".....",
		".###.",
		".....",
	)
	for _, mv := range []search.Movement{search.OnlyStraight, search.CanDiagonal} {
		m := jps.New(search.WithMovement(mv))
		if err := m.Attach(g); err != nil {
			fmt.Println("error:", err)
			return
		}
		res, err := m.FindPath(0, 1, 4, 1)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: found=%v steps=%d cost=%.3f\n", mv, res.Found, len(res.Path)-1, res.Cost)
	}
	// Output:
	// only-straight: found=true steps=6 cost=6.000
	// can-diagonal: found=true steps=4 cost=4.828
}
