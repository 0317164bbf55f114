package wallfollow

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var contexts = search.NewPool[Cost](order{})

// Manager is the wall-follower implementation of search.Manager.
type Manager struct {
	search.Base
}

// New builds a wall-follower manager.
func New(opts ...search.Option) *Manager {
	m := &Manager{}
	m.Init(Name, opts...)

	return m
}

// FindPath runs the explorer generations from (startX,startY) toward
// (endX,endY). Cap expiry or extinction of all explorers reports no path.
func (m *Manager) FindPath(startX, startY, endX, endY int) (search.Result, error) {
	return m.Run(startX, startY, endX, endY, m.solve)
}

func (m *Manager) solve(g *grid.Grid, start, goal grid.Point) (search.Result, mapset.Set[grid.Point], error) {
	opts := m.Options()
	sc := contexts.Get()
	defer contexts.Put(sc)
	sc.Reset(g, &opts)

	limit := opts.MaxIterations
	if limit == 0 {
		limit = sc.Width() * sc.Height()
	}
	r := &runner{sc: sc, goal: goal, onEnter: opts.OnEnqueue}
	sc.Nodes[sc.IndexOf(start)].Cost = Cost{Generation: 0}

	found, err := r.process(start, limit)
	res := search.Result{Expanded: sc.Expanded()}
	if err == nil && found {
		res.Found = true
		res.Path = sc.Chain(sc.IndexOf(goal))
		res.Cost = search.PathCost(res.Path)
	}

	return res, sc.ClosedSet(), err
}

// runner holds the mutable state for a single wall-follower execution.
type runner struct {
	sc      *search.Context[Cost]
	goal    grid.Point
	gen     int
	onEnter func(p grid.Point, generation float64)
}

// process advances generations until the goal is reached, every explorer died
// or limit generations have run.
func (r *runner) process(start grid.Point, limit int) (bool, error) {
	explorers := []Explorer{{At: start, State: Free, LastMove: primary(start, r.goal)}}
	next := make([]Explorer, 0, 4)

	for r.gen = 0; r.gen < limit && len(explorers) > 0; r.gen++ {
		if err := r.sc.Cancelled(); err != nil {
			return false, err
		}
		next = next[:0]
		for _, e := range explorers {
			// 1) Goal check; the first explorer in slice order wins.
			if e.At == r.goal {
				return true, nil
			}
			// 2) Close the current cell (split children share their parent's cell).
			r.close(e.At)
			// 3) Move.
			if e.State == Free {
				next = r.stepFree(e, next)
			} else {
				next = r.stepCrawling(e, next)
			}
		}
		explorers, next = next, explorers
	}

	return false, nil
}

// blocked reports whether p cannot be entered: out of bounds, obstacle or closed.
func (r *runner) blocked(p grid.Point) bool {
	if !r.sc.Walkable(p.X, p.Y) {
		return true
	}

	return r.sc.Nodes[r.sc.IndexOf(p)].Closed
}

// isParent reports whether p is the cell e came from.
func (r *runner) isParent(e Explorer, p grid.Point) bool {
	parent := r.sc.Nodes[r.sc.IndexOf(e.At)].Parent
	return parent != search.NoParent && r.sc.IndexOf(p) == parent
}

// stepFree moves e along the primary direction, or splits it into two crawlers.
func (r *runner) stepFree(e Explorer, next []Explorer) []Explorer {
	dir := primary(e.At, r.goal)
	to := e.At.Add(dir)
	if !r.blocked(to) {
		r.enter(e.At, to)
		e.At, e.LastMove = to, dir
		return append(next, e)
	}

	// The left-perpendicular branch keeps its right hand on the wall and vice versa.
	left, right := dir.Left(), dir.Right()
	next = append(next, Explorer{At: e.At, State: Crawling, Hand: Right, LastMove: left})
	if left != right {
		next = append(next, Explorer{At: e.At, State: Crawling, Hand: Left, LastMove: right})
	}

	return next
}

// stepCrawling moves e one cell along the contour; e dies when boxed in.
// Only a hand-rule move updates LastMove, and e turns Free once that move points
// along the primary direction of its new cell.
func (r *runner) stepCrawling(e Explorer, next []Explorer) []Explorer {
	dir, byHand, ok := r.crawlMove(e)
	if !ok {
		return next
	}
	to := e.At.Add(dir)
	r.enter(e.At, to)
	e.At = to
	if byHand {
		e.LastMove = dir
	}
	if e.LastMove == primary(e.At, r.goal) {
		e.State = Free
	}

	return append(next, e)
}

// crawlMove picks the crawler's next direction: the primary direction when it
// is enterable and not the parent cell, otherwise the first such move of the
// hand rule. byHand reports which of the two chose.
func (r *runner) crawlMove(e Explorer) (dir grid.Direction, byHand, ok bool) {
	if d := primary(e.At, r.goal); !d.IsZero() {
		if to := e.At.Add(d); !r.blocked(to) && !r.isParent(e, to) {
			return d, false, true
		}
	}
	for _, d := range handOrder(e.LastMove, e.Hand) {
		if to := e.At.Add(d); !r.blocked(to) && !r.isParent(e, to) {
			return d, true, true
		}
	}

	return grid.None, false, false
}

// enter links to under from and closes it immediately.
func (r *runner) enter(from, to grid.Point) {
	idx := r.sc.IndexOf(to)
	node := &r.sc.Nodes[idx]
	if node.Parent == search.NoParent {
		node.Parent = r.sc.IndexOf(from)
		node.Cost = Cost{Generation: r.gen + 1}
	}
	r.close(to)
	if r.onEnter != nil {
		r.onEnter(to, float64(r.gen+1))
	}
}

func (r *runner) close(p grid.Point) {
	idx := r.sc.IndexOf(p)
	if !r.sc.Nodes[idx].Closed {
		r.sc.Close(idx)
	}
}

var _ search.Manager = (*Manager)(nil)
