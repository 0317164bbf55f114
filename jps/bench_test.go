package jps_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/jps"
)

// BenchmarkFindPath measures a corner-to-corner search on a 128×128 map with
// 20% obstacle placements.
// Complexity: O(N log N) worst case
func BenchmarkFindPath(b *testing.B) {
	m := jps.New()
	if err := m.InitMap(128, 128, 128*128/5); err != nil {
		b.Fatalf("setup InitMap failed: %v", err)
	}
	_ = m.SetObstacle(0, 0, false)
	_ = m.SetObstacle(127, 127, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.FindPath(0, 0, 127, 127); err != nil {
			b.Fatal(err)
		}
	}
}
