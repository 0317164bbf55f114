package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func TestRenderASCII(t *testing.T) {
	g := grid.MustParse(
		"...",
		".#.",
		"...",
	)
	closed := mapset.New[grid.Point]()
	closed.Put(grid.Point{X: 0, Y: 0})
	closed.Put(grid.Point{X: 1, Y: 0})
	closed.Put(grid.Point{X: 0, Y: 1})
	start, goal := grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 2}

	out := renderASCII(frame{
		view:   g,
		closed: closed,
		path:   []grid.Point{start, {X: 0, Y: 1}, goal},
		start:  &start,
		goal:   &goal,
	})
	assert.Equal(t, "So.\n*#.\nE..\n", out)
}

func TestRenderASCIIWithoutEndpoints(t *testing.T) {
	g := grid.MustParse("#..")
	out := renderASCII(frame{view: g, closed: mapset.New[grid.Point]()})
	assert.Equal(t, g.String()+"\n", out)
}

func TestSummary(t *testing.T) {
	res := search.Result{
		Path:     []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Cost:     2,
		Found:    true,
		Expanded: 4,
	}
	assert.Equal(t, "engine=astar movement=only-straight found=true steps=2 cost=2.000 expanded=4",
		summary("astar", search.OnlyStraight, res, nil))
	assert.Equal(t, "engine=jps movement=can-diagonal found=false expanded=7",
		summary("jps", search.CanDiagonal, search.Result{Expanded: 7}, nil))
	assert.Equal(t, `engine=dijkstra movement=only-straight error="boom"`,
		summary("dijkstra", search.OnlyStraight, search.Result{}, errors.New("boom")))
}
