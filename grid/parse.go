package grid

import "fmt"

// Parse builds a grid from an ASCII literal: '#' is an obstacle, '.' is open.
// rows[i] describes y = i, and rows[i][j] describes x = j.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadGlyph for malformed input.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			switch row[x] {
			case GlyphOpen:
			case GlyphObstacle:
				g.layer[g.index(x, y)] = Obstacle
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, row[x], x, y)
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}

	return g
}
