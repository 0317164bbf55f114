package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ------------------------------------------------------------------------
// 1. Validation: endpoints and lifecycle.
// ------------------------------------------------------------------------

func TestFindPath_NoMap(t *testing.T) {
	m := dijkstra.New()
	_, err := m.FindPath(0, 0, 1, 1)
	assert.ErrorIs(t, err, search.ErrNoMap)
	assert.Equal(t, dijkstra.Name, m.Name())
}

func TestFindPath_BadEndpoints(t *testing.T) {
	m := dijkstra.New()
	require.NoError(t, m.Attach(grid.MustParse(
		"..",
		".#",
	)))

	tests := []struct {
		name           string
		sx, sy, ex, ey int
		want           error
	}{
		{"start out of bounds", -1, 0, 0, 0, search.ErrOutOfBounds},
		{"end out of bounds", 0, 0, 2, 0, search.ErrOutOfBounds},
		{"end on obstacle", 0, 0, 1, 1, search.ErrObstacleEndpoint},
		{"start on obstacle", 1, 1, 0, 0, search.ErrObstacleEndpoint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := m.FindPath(tc.sx, tc.sy, tc.ex, tc.ey)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Equal(t, 0, m.ClosedList().Size())
		})
	}
}

// ------------------------------------------------------------------------
// 2. Shortest paths.
// ------------------------------------------------------------------------

func TestFindPath_OpenGridManhattan(t *testing.T) {
	g, err := grid.New(6, 4)
	require.NoError(t, err)
	m := dijkstra.New()
	require.NoError(t, m.Attach(g))

	res, err := m.FindPath(0, 0, 5, 3)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 8.0, res.Cost)
	assert.Len(t, res.Path, 9)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, grid.Point{X: 5, Y: 3}, res.Path[len(res.Path)-1])
	for i := 1; i < len(res.Path); i++ {
		assert.True(t, search.OnlyStraight.Adjacent(res.Path[i-1], res.Path[i]))
	}
	assert.Equal(t, res.Expanded, m.ClosedList().Size())
}

func TestFindPath_Detour(t *testing.T) {
	g := grid.MustParse(
		".....",
		"####.",
		".....",
	)
	m := dijkstra.New()
	require.NoError(t, m.Attach(g))

	res, err := m.FindPath(0, 0, 0, 2)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 10.0, res.Cost)
	assert.Len(t, res.Path, 11)
	for _, p := range res.Path {
		assert.True(t, g.IsWalkable(p.X, p.Y), "path crosses obstacle at %v", p)
	}
}

func TestFindPath_Diagonal(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	m := dijkstra.New(search.WithMovement(search.CanDiagonal))
	require.NoError(t, m.Attach(g))

	res, err := m.FindPath(0, 0, 4, 2)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.InDelta(t, 2+2*math.Sqrt2, res.Cost, 1e-9)
	assert.InDelta(t, search.PathCost(res.Path), res.Cost, 1e-9)
}

func TestFindPath_DiagonalSqueezeForbidden(t *testing.T) {
	// both flanks of the (0,0)->(1,1) diagonal are blocked
	g := grid.MustParse(
		".#",
		"#.",
	)
	m := dijkstra.New(search.WithMovement(search.CanDiagonal))
	require.NoError(t, m.Attach(g))

	res, err := m.FindPath(0, 0, 1, 1)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestFindPath_StartIsGoal(t *testing.T) {
	m := dijkstra.New()
	require.NoError(t, m.InitMap(3, 3, 0))

	res, err := m.FindPath(1, 1, 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []grid.Point{{X: 1, Y: 1}}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
}

func TestFindPath_Wall(t *testing.T) {
	g := grid.MustParse(
		"..#..",
		"..#..",
		"..#..",
	)
	m := dijkstra.New()
	require.NoError(t, m.Attach(g))

	res, err := m.FindPath(0, 1, 4, 1)
	require.NoError(t, err)
	assert.False(t, res.Found)
	// every reachable cell was closed
	assert.Equal(t, 6, res.Expanded)
	assert.Equal(t, 6, m.ClosedList().Size())
}

// ------------------------------------------------------------------------
// 3. Options and hooks.
// ------------------------------------------------------------------------

func TestFindPath_Hooks(t *testing.T) {
	var expanded, enqueued int
	m := dijkstra.New(
		search.WithOnExpand(func(grid.Point) { expanded++ }),
		search.WithOnEnqueue(func(grid.Point, float64) { enqueued++ }),
	)
	require.NoError(t, m.InitMap(4, 4, 0))

	res, err := m.FindPath(0, 0, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, res.Expanded, expanded)
	assert.GreaterOrEqual(t, enqueued, expanded)
}

func TestFindPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := dijkstra.New(search.WithContext(ctx))
	require.NoError(t, m.InitMap(4, 4, 0))

	res, err := m.FindPath(0, 0, 3, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Found)
}

func TestFindPath_Idempotent(t *testing.T) {
	m := dijkstra.New(search.WithSeed(11))
	require.NoError(t, m.InitMap(20, 20, 80))
	require.NoError(t, m.SetObstacle(0, 0, false))
	require.NoError(t, m.SetObstacle(19, 19, false))

	first, err := m.FindPath(0, 0, 19, 19)
	require.NoError(t, err)
	firstClosed := m.ClosedList().Size()
	second, err := m.FindPath(0, 0, 19, 19)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstClosed, m.ClosedList().Size())
}
