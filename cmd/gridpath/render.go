package main

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ASCII glyphs. Obstacle and open match grid.Parse.
const (
	glyphObstacle = grid.GlyphObstacle
	glyphOpen     = grid.GlyphOpen
	glyphClosed   = 'o'
	glyphPath     = '*'
	glyphStart    = 'S'
	glyphGoal     = 'E'
)

// Cell kinds in drawing priority order, highest last.
type mark uint8

const (
	markOpen mark = iota
	markObstacle
	markClosed
	markPath
	markStart
	markGoal
)

var glyphs = [...]byte{
	markOpen:     glyphOpen,
	markObstacle: glyphObstacle,
	markClosed:   glyphClosed,
	markPath:     glyphPath,
	markStart:    glyphStart,
	markGoal:     glyphGoal,
}

// frame is the state one picture is drawn from.
type frame struct {
	view   grid.View
	closed mapset.Set[grid.Point]
	path   []grid.Point
	start  *grid.Point
	goal   *grid.Point
}

// marks resolves every cell of f to its mark, row-major.
func (f frame) marks() []mark {
	w, h := f.view.Width(), f.view.Height()
	out := make([]mark, w*h)
	for _, c := range f.view.Cells() {
		if !c.Walkable() {
			out[c.Y*w+c.X] = markObstacle
		}
	}
	f.closed.Each(func(p grid.Point) {
		if p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h {
			out[p.Y*w+p.X] = markClosed
		}
	})
	for _, p := range f.path {
		out[p.Y*w+p.X] = markPath
	}
	if f.start != nil {
		out[f.start.Y*w+f.start.X] = markStart
	}
	if f.goal != nil {
		out[f.goal.Y*w+f.goal.X] = markGoal
	}

	return out
}

// renderASCII draws f one text row per map row, y = 0 first.
func renderASCII(f frame) string {
	w, h := f.view.Width(), f.view.Height()
	marks := f.marks()

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteByte(glyphs[marks[y*w+x]])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// summary is the one-line report printed after a search.
func summary(engine string, mv search.Movement, res search.Result, err error) string {
	if err != nil {
		return fmt.Sprintf("engine=%s movement=%s error=%q", engine, mv, err)
	}
	if !res.Found {
		return fmt.Sprintf("engine=%s movement=%s found=false expanded=%d", engine, mv, res.Expanded)
	}

	return fmt.Sprintf("engine=%s movement=%s found=true steps=%d cost=%.3f expanded=%d",
		engine, mv, len(res.Path)-1, res.Cost, res.Expanded)
}
