package jps

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var contexts = search.NewPool[Cost](order{})

// Manager is the JPS implementation of search.Manager.
type Manager struct {
	search.Base
}

// New builds a JPS manager; search.WithMovement selects 4- or 8-directional
// travel (4 by default).
func New(opts ...search.Option) *Manager {
	m := &Manager{}
	m.Init(Name, opts...)

	return m
}

// FindPath returns the cheapest path from (startX,startY) to (endX,endY) with
// every intermediate cell filled in. ClosedList holds the expanded jump points.
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
		diagonal:  opts.Movement == search.CanDiagonal,
		heuristic: search.Heuristic(opts.Movement),
		goal:      goal,
		dirs:      make([]grid.Direction, 0, 8),
	}
	h := r.heuristic(start, goal)
	sc.Push(sc.IndexOf(start), Cost{G: 0, H: h, F: h})

	found, err := r.process()
	res := search.Result{Expanded: sc.Expanded()}
	if err == nil && found {
		idx := sc.IndexOf(goal)
		res.Found = true
		res.Path = r.path(idx)
		res.Cost = sc.Nodes[idx].Cost.G
	}

	return res, sc.ClosedSet(), err
}

// runner holds the mutable state for a single JPS execution.
type runner struct {
	sc        *search.Context[Cost]
	diagonal  bool
	heuristic func(a, b grid.Point) float64
	goal      grid.Point
	dirs      []grid.Direction // reused exploration buffer
}

func (r *runner) process() (bool, error) {
	goalIdx := r.sc.IndexOf(r.goal)
	for {
		if err := r.sc.Cancelled(); err != nil {
			return false, err
		}
		u, ok := r.sc.Pop()
		if !ok {
			return false, nil
		}
		r.sc.Close(u)
		if u == goalIdx {
			return true, nil
		}
		r.successors(u)
	}
}

// successors jumps from u along every pruned direction and relaxes the jump
// points found.
func (r *runner) successors(u int) {
	node := r.sc.Nodes[u]
	for _, d := range r.directions(u) {
		jp, ok := r.jump(node.Point, d)
		if !ok {
			continue
		}
		v := r.sc.IndexOf(jp)
		next := &r.sc.Nodes[v]
		if next.Closed {
			continue
		}
		g := node.Cost.G + search.Euclidean(node.Point, jp)
		if g >= next.Cost.G {
			continue
		}
		h := r.heuristic(jp, r.goal)
		next.Parent = u
		r.sc.Push(v, Cost{G: g, H: h, F: g + h})
	}
}

var _ search.Manager = (*Manager)(nil)
