package dijkstra

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var contexts = search.NewPool[Cost](order{})

// Manager is the Dijkstra implementation of search.Manager.
type Manager struct {
	search.Base
}

// New builds a Dijkstra manager. Invalid options surface as
// search.ErrOptionViolation on first use.
func New(opts ...search.Option) *Manager {
	m := &Manager{}
	m.Init(Name, opts...)

	return m
}

// FindPath returns the cheapest path from (startX,startY) to (endX,endY).
//
// Preconditions and validation (in order):
//  1. options are valid (search.ErrOptionViolation).
//  2. a grid is attached (search.ErrNoMap).
//  3. both endpoints are in bounds (search.ErrOutOfBounds).
//  4. both endpoints are Open (search.ErrObstacleEndpoint).
//
// An unreachable goal yields Result{Found: false} and a nil error.
func (m *Manager) FindPath(startX, startY, endX, endY int) (search.Result, error) {
	return m.Run(startX, startY, endX, endY, m.solve)
}

// solve runs one Dijkstra pass on a pooled context.
func (m *Manager) solve(g *grid.Grid, start, goal grid.Point) (search.Result, mapset.Set[grid.Point], error) {
	opts := m.Options()
	sc := contexts.Get()
	defer contexts.Put(sc)
	sc.Reset(g, &opts)

	r := &runner{sc: sc, steps: opts.Movement.Directions(), goal: sc.IndexOf(goal)}
	src := sc.IndexOf(start)
	sc.Push(src, Cost{G: 0})

	found, err := r.process()
	res := search.Result{Expanded: sc.Expanded()}
	if err == nil && found {
		res.Found = true
		res.Path = sc.Chain(r.goal)
		res.Cost = sc.Nodes[r.goal].Cost.G
	}

	return res, sc.ClosedSet(), err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	sc    *search.Context[Cost] // pooled scratch; node costs and parents live here
	steps []grid.Direction      // neighbor offsets of the active movement mode
	goal  int                   // node index of the goal
}

// process is the core loop. It pops the cheapest open cell, closes it and
// relaxes its neighbors until the goal is closed or the open list empties.
func (r *runner) process() (bool, error) {
	for {
		// 1) Honor cancellation once per expansion.
		if err := r.sc.Cancelled(); err != nil {
			return false, err
		}

		// 2) Pop the cheapest cell; stale duplicates are skipped by Pop.
		u, ok := r.sc.Pop()
		if !ok {
			return false, nil
		}

		// 3) Its distance is final now.
		r.sc.Close(u)
		if u == r.goal {
			return true, nil
		}

		// 4) Relax all legal steps from u.
		r.relax(u)
	}
}

// relax improves every open neighbor of u reachable through u more cheaply.
func (r *runner) relax(u int) {
	from := r.sc.Nodes[u]
	for _, d := range r.steps {
		if !r.sc.CanStep(from.Point, d) {
			continue
		}
		v := r.sc.IndexOf(from.Add(d))
		next := &r.sc.Nodes[v]
		if next.Closed {
			continue
		}
		cand := from.Cost.G + search.StepCost(d)
		if cand < next.Cost.G {
			next.Parent = u
			r.sc.Push(v, Cost{G: cand})
		}
	}
}

var _ search.Manager = (*Manager)(nil)
