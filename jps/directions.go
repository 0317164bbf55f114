package jps

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// directions returns the pruned set of scan directions for node u, derived from
// how u was reached. The start scans every direction of the mode.
// The returned slice aliases r.dirs.
func (r *runner) directions(u int) []grid.Direction {
	r.dirs = r.dirs[:0]
	node := r.sc.Nodes[u]
	if node.Parent == search.NoParent {
		r.dirs = append(r.dirs, grid.Orthogonal[:]...)
		if r.diagonal {
			r.dirs = append(r.dirs, grid.Diagonals[:]...)
		}
		return r.dirs
	}

	d := grid.Toward(r.sc.Nodes[node.Parent].Point, node.Point)
	if r.diagonal {
		return r.directions8(node.Point, d)
	}

	// 4-directional: forward plus both perpendiculars.
	r.dirs = append(r.dirs, d, d.Left(), d.Right())
	return r.dirs
}

func (r *runner) directions8(p grid.Point, d grid.Direction) []grid.Direction {
	w := r.sc.Walkable
	x, y, dx, dy := p.X, p.Y, d.DX, d.DY

	if !d.IsDiagonal() {
		r.dirs = append(r.dirs, d)
		if dy == 0 {
			if !w(x, y+1) && w(x+dx, y+1) {
				r.dirs = append(r.dirs, grid.Direction{DX: dx, DY: 1})
			}
			if !w(x, y-1) && w(x+dx, y-1) {
				r.dirs = append(r.dirs, grid.Direction{DX: dx, DY: -1})
			}
		} else {
			if !w(x+1, y) && w(x+1, y+dy) {
				r.dirs = append(r.dirs, grid.Direction{DX: 1, DY: dy})
			}
			if !w(x-1, y) && w(x-1, y+dy) {
				r.dirs = append(r.dirs, grid.Direction{DX: -1, DY: dy})
			}
		}
		return r.dirs
	}

	r.dirs = append(r.dirs,
		grid.Direction{DX: dx},
		grid.Direction{DY: dy},
		d,
	)
	if !w(x-dx, y) && w(x-dx, y+dy) {
		r.dirs = append(r.dirs, grid.Direction{DX: -dx, DY: dy})
	}
	if !w(x, y-dy) && w(x+dx, y-dy) {
		r.dirs = append(r.dirs, grid.Direction{DX: dx, DY: -dy})
	}

	return r.dirs
}
