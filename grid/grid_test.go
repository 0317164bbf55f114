package grid_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrBadDimensions)
		})
	}
}

func TestNew_AllOpen(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Len())
	assert.Zero(t, g.ObstacleCount())
	for _, c := range g.Cells() {
		assert.Equal(t, grid.Open, c.Type, "cell %v", c.Point)
	}
}

func TestRandom_CollapsesDuplicates(t *testing.T) {
	_, err := grid.Random(3, 3, -1, nil)
	require.ErrorIs(t, err, grid.ErrNegativeObstacles)

	// Far more placements than cells: every cell ends up blocked exactly once.
	g, err := grid.Random(3, 3, 500, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, 9, g.ObstacleCount())

	g, err = grid.Random(20, 20, 50, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.LessOrEqual(t, g.ObstacleCount(), 50)
	assert.Positive(t, g.ObstacleCount())
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	a, err := grid.Random(16, 16, 40, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := grid.Random(16, 16, 40, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestScatter_ReportsChangedCells(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Scatter(10, rand.New(rand.NewSource(1))))
	assert.Equal(t, 0, g.Scatter(10, rand.New(rand.NewSource(1))))
}

//----------------------------------------------------------------------------//
// Bounds and lookups
//----------------------------------------------------------------------------//

// TestIsInMap checks IsInMap on a 3×2 grid.
func TestIsInMap(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.IsInMap(xy[0], xy[1]), "IsInMap(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.IsInMap(xy[0], xy[1]), "IsInMap(%d,%d)", xy[0], xy[1])
		assert.False(t, g.IsWalkable(xy[0], xy[1]))
		_, err := g.At(xy[0], xy[1])
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New(5, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			idx := g.Index(x, y)
			assert.Equal(t, y*5+x, idx)
			assert.Equal(t, grid.Point{X: x, Y: y}, g.Coordinate(idx))
		}
	}
}

//----------------------------------------------------------------------------//
// Editing
//----------------------------------------------------------------------------//

func TestEditing(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetObstacle(1, 1, true))
	assert.False(t, g.IsWalkable(1, 1))
	c, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, c.Type)
	assert.False(t, c.Walkable())

	typ, err := g.Toggle(1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Open, typ)
	typ, err = g.Toggle(0, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, typ)
	assert.Equal(t, 1, g.ObstacleCount())

	assert.ErrorIs(t, g.SetObstacle(3, 0, true), grid.ErrOutOfBounds)
	_, err = g.Toggle(0, -1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	g.ClearObstacles()
	assert.Zero(t, g.ObstacleCount())
}

func TestCopyLayer_IsIndependent(t *testing.T) {
	g := grid.MustParse(
		".#",
		"..",
	)
	layer := g.CopyLayer(nil)
	require.Len(t, layer, 4)
	assert.Equal(t, grid.Obstacle, layer[1])

	require.NoError(t, g.SetObstacle(1, 0, false))
	assert.Equal(t, grid.Obstacle, layer[1], "snapshot must not follow later edits")

	reused := g.CopyLayer(layer)
	assert.Equal(t, grid.Open, reused[1])
}

// TestConcurrentEdits exercises the lock under the race detector.
func TestConcurrentEdits(t *testing.T) {
	g, err := grid.New(32, 32)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				_, _ = g.Toggle(rng.Intn(32), rng.Intn(32))
				_ = g.CopyLayer(nil)
				_ = g.IsWalkable(rng.Intn(32), rng.Intn(32))
			}
		}(int64(w))
	}
	wg.Wait()
	assert.LessOrEqual(t, g.ObstacleCount(), 32*32)
}

//----------------------------------------------------------------------------//
// Parse / String
//----------------------------------------------------------------------------//

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonRectangular},
		{"Glyph", []string{".x"}, grid.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.rows...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		"..#.",
		"#...",
		"...#",
	}
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.False(t, g.IsWalkable(2, 0))
	assert.False(t, g.IsWalkable(0, 1))
	assert.True(t, g.IsWalkable(3, 0))
	assert.Equal(t, "..#.\n#...\n...#", g.String())
	assert.Panics(t, func() { grid.MustParse("?") })
}

//----------------------------------------------------------------------------//
// Directions
//----------------------------------------------------------------------------//

func TestDirections(t *testing.T) {
	assert.Equal(t, grid.West, grid.North.Left())
	assert.Equal(t, grid.East, grid.North.Right())
	assert.Equal(t, grid.South, grid.North.Reverse())
	assert.True(t, grid.NorthEast.IsDiagonal())
	assert.False(t, grid.East.IsDiagonal())
	assert.True(t, grid.None.IsZero())
	assert.Equal(t, grid.None.Left(), grid.None.Right())

	from := grid.Point{X: 5, Y: 5}
	assert.Equal(t, grid.SouthWest, grid.Toward(from, grid.Point{X: 0, Y: 1}))
	assert.Equal(t, grid.East, grid.Toward(from, grid.Point{X: 9, Y: 5}))
	assert.Equal(t, grid.None, grid.Toward(from, from))
	assert.Equal(t, grid.Point{X: 6, Y: 4}, from.Add(grid.SouthEast))
	assert.Equal(t, "(5,5)", from.String())
	assert.Equal(t, "obstacle", grid.Obstacle.String())
}
