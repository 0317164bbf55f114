package wallfollow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
)

func TestPrimary(t *testing.T) {
	o := grid.Point{X: 2, Y: 2}
	tests := []struct {
		goal grid.Point
		want grid.Direction
	}{
		{grid.Point{X: 6, Y: 3}, grid.East},
		{grid.Point{X: 0, Y: 1}, grid.West},
		{grid.Point{X: 3, Y: 5}, grid.North},
		{grid.Point{X: 2, Y: 0}, grid.South},
		{grid.Point{X: 4, Y: 4}, grid.North}, // tie → vertical
		{grid.Point{X: 2, Y: 2}, grid.None},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, primary(o, tc.goal), "goal %v", tc.goal)
	}
}

func TestHandOrder(t *testing.T) {
	assert.Equal(t,
		[4]grid.Direction{grid.West, grid.North, grid.East, grid.South},
		handOrder(grid.North, Left))
	assert.Equal(t,
		[4]grid.Direction{grid.East, grid.North, grid.West, grid.South},
		handOrder(grid.North, Right))
	assert.Equal(t,
		[4]grid.Direction{grid.South, grid.East, grid.North, grid.West},
		handOrder(grid.East, Right))
	// an unknown last move falls back to north
	assert.Equal(t, handOrder(grid.North, Left), handOrder(grid.None, Left))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "free", Free.String())
	assert.Equal(t, "crawling", Crawling.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}
