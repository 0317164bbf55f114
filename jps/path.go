package jps

import "github.com/katalvlaran/gridpath/grid"

// path expands the jump-point chain ending at goal into unit steps.
func (r *runner) path(goal int) []grid.Point {
	jumps := r.sc.Chain(goal)
	out := make([]grid.Point, 0, len(jumps))
	out = append(out, jumps[0])
	for i := 1; i < len(jumps); i++ {
		from, to := jumps[i-1], jumps[i]
		d := grid.Toward(from, to)
		for p := from; p != to; {
			p = p.Add(d)
			out = append(out, p)
		}
	}

	return out
}
