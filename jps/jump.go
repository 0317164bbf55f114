package jps

import "github.com/katalvlaran/gridpath/grid"

// jump scans from p along d and returns the first jump point, if any.
// p itself is never returned.
func (r *runner) jump(p grid.Point, d grid.Direction) (grid.Point, bool) {
	if r.diagonal {
		return r.jump8(p, d)
	}

	return r.jump4(p, d)
}

// jump4 is the 4-directional scan. Vertical cells double as "diagonal" cells:
// they stop the scan when a horizontal sub-scan from them succeeds.
func (r *runner) jump4(p grid.Point, d grid.Direction) (grid.Point, bool) {
	for {
		p = p.Add(d)
		if !r.sc.Walkable(p.X, p.Y) {
			return p, false
		}
		if p == r.goal {
			return p, true
		}
		if d.DX != 0 {
			if r.forcedHorizontal4(p, d.DX) {
				return p, true
			}
			continue
		}
		if r.forcedVertical4(p, d.DY) {
			return p, true
		}
		if _, ok := r.jump4(p, grid.East); ok {
			return p, true
		}
		if _, ok := r.jump4(p, grid.West); ok {
			return p, true
		}
	}
}

// forcedHorizontal4: a side cell is open while the side cell behind is blocked.
func (r *runner) forcedHorizontal4(p grid.Point, dx int) bool {
	w := r.sc.Walkable
	return (w(p.X, p.Y+1) && !w(p.X-dx, p.Y+1)) ||
		(w(p.X, p.Y-1) && !w(p.X-dx, p.Y-1))
}

func (r *runner) forcedVertical4(p grid.Point, dy int) bool {
	w := r.sc.Walkable
	return (w(p.X+1, p.Y) && !w(p.X+1, p.Y-dy)) ||
		(w(p.X-1, p.Y) && !w(p.X-1, p.Y-dy))
}

// jump8 is the canonical 8-directional scan. A diagonal step is legal when at
// least one flanking orthogonal cell is open.
func (r *runner) jump8(p grid.Point, d grid.Direction) (grid.Point, bool) {
	for {
		if !r.sc.CanStep(p, d) {
			return p, false
		}
		p = p.Add(d)
		if p == r.goal || r.forced8(p, d) {
			return p, true
		}
		if !d.IsDiagonal() {
			continue
		}
		if _, ok := r.jump8(p, grid.Direction{DX: d.DX}); ok {
			return p, true
		}
		if _, ok := r.jump8(p, grid.Direction{DY: d.DY}); ok {
			return p, true
		}
	}
}

// forced8 reports whether p, entered along d, has a neighbor that only an
// optimal path through p reaches.
func (r *runner) forced8(p grid.Point, d grid.Direction) bool {
	w := r.sc.Walkable
	x, y, dx, dy := p.X, p.Y, d.DX, d.DY
	switch {
	case dx != 0 && dy != 0:
		return (!w(x-dx, y) && w(x-dx, y+dy)) ||
			(!w(x, y-dy) && w(x+dx, y-dy))
	case dx != 0:
		return (!w(x, y+1) && w(x+dx, y+1)) ||
			(!w(x, y-1) && w(x+dx, y-1))
	default:
		return (!w(x+1, y) && w(x+1, y+dy)) ||
			(!w(x-1, y) && w(x-1, y+dy))
	}
}
