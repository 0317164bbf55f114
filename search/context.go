package search

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pqueue"
)

// NoParent marks a node without predecessor (the start, or an unreached cell).
const NoParent = -1

// Node is the per-cell scratch record of one search. C is the engine's cost payload.
type Node[C any] struct {
	grid.Point
	Parent int
	Closed bool
	Cost   C
}

// Ordering tells a Context how to initialize and compare an engine's cost payload.
//
//	Zero     – payload of an unreached node.
//	Compare  – open-list order; negative when a should be dequeued before b.
//	Priority – the scalar reported to OnEnqueue hooks.
type Ordering[C any] interface {
	Zero() C
	Compare(a, b C) int
	Priority(c C) float64
}

// entry snapshots (index, cost) at push time so that later improvements to the
// node never reorder an entry already inside the heap.
type entry[C any] struct {
	index int
	cost  C
}

// Context is the scratch state of one search: a private copy of the obstacle
// layer, a node per cell, the open list and the closed order.
// A Context is not safe for concurrent use; take one per call from a Pool.
type Context[C any] struct {
	width  int
	height int
	layer  []grid.NodeType

	// Nodes is indexed row-major, like the grid.
	Nodes []Node[C]

	order  Ordering[C]
	open   *pqueue.Queue[entry[C]]
	closed []int
	opts   *Options
}

// NewContext returns an empty Context ordered by order.
func NewContext[C any](order Ordering[C]) *Context[C] {
	return &Context[C]{
		order: order,
		open: pqueue.New(func(a, b entry[C]) int {
			return order.Compare(a.cost, b.cost)
		}, 0),
	}
}

// Reset prepares the context for a search over g: the layer is copied under
// the grid's read lock, every node is reset and the open and closed lists are emptied.
// Complexity: O(W×H).
func (c *Context[C]) Reset(g *grid.Grid, opts *Options) {
	c.width, c.height = g.Width(), g.Height()
	c.layer = g.CopyLayer(c.layer)
	c.opts = opts

	n := len(c.layer)
	if cap(c.Nodes) < n {
		c.Nodes = make([]Node[C], n)
	}
	c.Nodes = c.Nodes[:n]
	zero := c.order.Zero()
	for i := range c.Nodes {
		c.Nodes[i] = Node[C]{
			Point:  grid.Point{X: i % c.width, Y: i / c.width},
			Parent: NoParent,
			Cost:   zero,
		}
	}
	c.open.Clear()
	c.closed = c.closed[:0]
}

// Width of the searched layer.
func (c *Context[C]) Width() int { return c.width }

// Height of the searched layer.
func (c *Context[C]) Height() int { return c.height }

// Index maps (x,y) to a node index. The caller must bounds-check first.
func (c *Context[C]) Index(x, y int) int { return y*c.width + x }

// IndexOf maps p to a node index. The caller must bounds-check first.
func (c *Context[C]) IndexOf(p grid.Point) int { return p.Y*c.width + p.X }

// Walkable reports whether (x,y) is inside the layer and Open.
func (c *Context[C]) Walkable(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}

	return c.layer[y*c.width+x] == grid.Open
}

// CanStep reports whether one step along d from p is legal: the target must be
// walkable and, for a diagonal, at least one of the two flanking orthogonal
// cells must be walkable.
func (c *Context[C]) CanStep(p grid.Point, d grid.Direction) bool {
	if !c.Walkable(p.X+d.DX, p.Y+d.DY) {
		return false
	}
	if d.IsDiagonal() {
		return c.Walkable(p.X+d.DX, p.Y) || c.Walkable(p.X, p.Y+d.DY)
	}

	return true
}

// Push stores cost on node idx and enqueues it.
func (c *Context[C]) Push(idx int, cost C) {
	c.Nodes[idx].Cost = cost
	c.open.Enqueue(entry[C]{index: idx, cost: cost})
	if c.opts != nil && c.opts.OnEnqueue != nil {
		c.opts.OnEnqueue(c.Nodes[idx].Point, c.order.Priority(cost))
	}
}

// Pop dequeues the best entry whose node is not closed yet. Stale duplicates are
// discarded on the way. Reports false when the open list is exhausted.
func (c *Context[C]) Pop() (int, bool) {
	for {
		e, ok := c.open.Dequeue()
		if !ok {
			return NoParent, false
		}
		if !c.Nodes[e.index].Closed {
			return e.index, true
		}
	}
}

// OpenLen reports the number of entries in the open list, stale ones included.
func (c *Context[C]) OpenLen() int { return c.open.Len() }

// Close marks node idx as expanded and runs the OnExpand hook.
func (c *Context[C]) Close(idx int) {
	c.Nodes[idx].Closed = true
	c.closed = append(c.closed, idx)
	if c.opts != nil && c.opts.OnExpand != nil {
		c.opts.OnExpand(c.Nodes[idx].Point)
	}
}

// Expanded reports how many nodes have been closed.
func (c *Context[C]) Expanded() int { return len(c.closed) }

// Cancelled returns the context error when the caller's context is done.
func (c *Context[C]) Cancelled() error {
	if c.opts == nil || c.opts.Ctx == nil {
		return nil
	}

	return c.opts.Ctx.Err()
}

// Chain follows Parent links from idx back to the root and returns the cells
// root first.
func (c *Context[C]) Chain(idx int) []grid.Point {
	var rev []grid.Point
	for i := idx; i != NoParent; i = c.Nodes[i].Parent {
		rev = append(rev, c.Nodes[i].Point)
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev
}

// ClosedSet returns the closed cells as a fresh set.
func (c *Context[C]) ClosedSet() mapset.Set[grid.Point] {
	set := mapset.New[grid.Point]()
	for _, idx := range c.closed {
		set.Put(c.Nodes[idx].Point)
	}

	return set
}

// Pool recycles contexts between calls so that repeated searches on the same
// map size do not reallocate node arrays.
type Pool[C any] struct {
	pool sync.Pool
}

// NewPool returns a Pool producing contexts ordered by order.
func NewPool[C any](order Ordering[C]) *Pool[C] {
	p := &Pool[C]{}
	p.pool.New = func() any { return NewContext[C](order) }

	return p
}

// Get returns a context ready to Reset.
func (p *Pool[C]) Get() *Context[C] {
	return p.pool.Get().(*Context[C])
}

// Put returns c to the pool. c must not be used afterwards.
func (p *Pool[C]) Put(c *Context[C]) {
	c.opts = nil
	p.pool.Put(c)
}
