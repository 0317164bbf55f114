package astar

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var contexts = search.NewPool[Cost](order{})

// Manager is the A* implementation of search.Manager.
type Manager struct {
	search.Base
}

// New builds an A* manager. Invalid options surface as
// search.ErrOptionViolation on first use.
func New(opts ...search.Option) *Manager {
	m := &Manager{}
	m.Init(Name, opts...)

	return m
}

// FindPath returns the cheapest path from (startX,startY) to (endX,endY).
// Validation follows search.Base.Run; an unreachable goal yields
// Result{Found: false} and a nil error.
func (m *Manager) FindPath(startX, startY, endX, endY int) (search.Result, error) {
	return m.Run(startX, startY, endX, endY, m.solve)
}

func (m *Manager) solve(g *grid.Grid, start, goal grid.Point) (search.Result, mapset.Set[grid.Point], error) {
	opts := m.Options()
	sc := contexts.Get()
	defer contexts.Put(sc)
	sc.Reset(g, &opts)

	r := &runner{
		sc:        sc,
		steps:     opts.Movement.Directions(),
		heuristic: search.Heuristic(opts.Movement),
		goal:      goal,
		goalIdx:   sc.IndexOf(goal),
	}
	h := r.heuristic(start, goal)
	sc.Push(sc.IndexOf(start), Cost{G: 0, H: h, F: h})

	found, err := r.process()
	res := search.Result{Expanded: sc.Expanded()}
	if err == nil && found {
		res.Found = true
		res.Path = sc.Chain(r.goalIdx)
		res.Cost = sc.Nodes[r.goalIdx].Cost.G
	}

	return res, sc.ClosedSet(), err
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	sc        *search.Context[Cost]
	steps     []grid.Direction
	heuristic func(a, b grid.Point) float64
	goal      grid.Point
	goalIdx   int
}

func (r *runner) process() (bool, error) {
	for {
		if err := r.sc.Cancelled(); err != nil {
			return false, err
		}
		u, ok := r.sc.Pop()
		if !ok {
			return false, nil
		}
		r.sc.Close(u)
		if u == r.goalIdx {
			return true, nil
		}
		r.relax(u)
	}
}

// relax pushes every neighbor of u whose G improves through u.
func (r *runner) relax(u int) {
	from := r.sc.Nodes[u]
	for _, d := range r.steps {
		if !r.sc.CanStep(from.Point, d) {
			continue
		}
		p := from.Add(d)
		v := r.sc.IndexOf(p)
		next := &r.sc.Nodes[v]
		if next.Closed {
			continue
		}
		g := from.Cost.G + search.StepCost(d)
		if g >= next.Cost.G {
			continue
		}
		h := r.heuristic(p, r.goal)
		next.Parent = u
		r.sc.Push(v, Cost{G: g, H: h, F: g + h})
	}
}

var _ search.Manager = (*Manager)(nil)
