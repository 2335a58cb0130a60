package terrain

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Skew biases the wall orientation of a Maze.
type Skew int

const (
	// SkewNone splits vertically when width ≥ height.
	SkewNone Skew = iota
	// SkewVertical favors vertical walls: split vertically when 2·width ≥ height.
	SkewVertical
	// SkewHorizontal favors horizontal walls: split vertically only when width ≥ 2·height.
	SkewHorizontal
)

// String returns the builder key suffix of s.
func (s Skew) String() string {
	switch s {
	case SkewNone:
		return "none"
	case SkewVertical:
		return "vskew"
	case SkewHorizontal:
		return "hskew"
	}

	return fmt.Sprintf("Skew(%d)", int(s))
}

// vertical reports whether a w×h chamber is cut by a vertical wall.
func (s Skew) vertical(w, h int) bool {
	switch s {
	case SkewVertical:
		return 2*w >= h
	case SkewHorizontal:
		return w >= 2*h
	}

	return w >= h
}

// Maze is a recursive-division maze generator. Each wall gets one gap,
// placed at an end that faces an existing opening when there is one. When
// both ends face openings both stay open, so the wall has two gaps and no
// earlier opening is sealed.
type Maze struct {
	base
	skew Skew
}

var _ Generator = (*Maze)(nil)

// NewMaze returns a maze generator for width×height grids.
func NewMaze(width, height int, skew Skew, opts ...Option) (*Maze, error) {
	if skew < SkewNone || skew > SkewHorizontal {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSkew, int(skew))
	}
	b, err := newBase(width, height, opts)
	if err != nil {
		return nil, err
	}

	return &Maze{base: b, skew: skew}, nil
}

// Skew returns the configured orientation bias.
func (m *Maze) Skew() Skew { return m.skew }

// Generate returns a new grid with a maze over its interior.
func (m *Maze) Generate() *grid.Grid {
	tl, br := m.defaultRegion()
	return m.GenerateRegion(tl, br)
}

// GenerateRegion returns a new grid with a maze over [topLeft, bottomRight].
func (m *Maze) GenerateRegion(topLeft, bottomRight grid.Point) *grid.Grid {
	g := grid.MustNew(m.width, m.height)
	m.Apply(g, topLeft, bottomRight)

	return g
}

// Apply draws the border of [topLeft, bottomRight] and divides its inside.
// An inverted rectangle draws nothing.
func (m *Maze) Apply(g *grid.Grid, topLeft, bottomRight grid.Point) {
	tl, br := topLeft, bottomRight
	if empty(tl, br) {
		return
	}
	c := m.canvas(g)
	c.border(tl, br)
	m.divide(c, tl, br)
}

// divide splits the chamber [tl, br] with one wall and recurses on both halves.
func (m *Maze) divide(c *canvas, tl, br grid.Point) {
	w, h := br.X-tl.X+1, br.Y-tl.Y+1
	if w <= 0 || h <= 0 {
		return
	}

	if m.skew.vertical(w, h) {
		if w <= 2 {
			return
		}
		x := m.wallAt(tl.X, br.X)
		first, last := grid.Point{X: x, Y: tl.Y}, grid.Point{X: x, Y: br.Y}
		m.wall(c, first, last, first.Add(0, -1), last.Add(0, 1))
		m.divide(c, tl, grid.Point{X: x - 1, Y: br.Y})
		m.divide(c, grid.Point{X: x + 1, Y: tl.Y}, br)

		return
	}

	if h <= 2 {
		return
	}
	y := m.wallAt(tl.Y, br.Y)
	first, last := grid.Point{X: tl.X, Y: y}, grid.Point{X: br.X, Y: y}
	m.wall(c, first, last, first.Add(-1, 0), last.Add(1, 0))
	m.divide(c, tl, grid.Point{X: br.X, Y: y - 1})
	m.divide(c, grid.Point{X: tl.X, Y: y + 1}, br)
}

// wallAt picks the wall coordinate inside the span [lo, hi] (at least 3 cells).
func (m *Maze) wallAt(lo, hi int) int {
	switch n := hi - lo + 1; {
	case n >= 20:
		return (lo + hi) / 2
	case n >= 6:
		if m.rng.Intn(2) == 0 {
			return (lo + hi) / 2
		}
		return (lo + hi + 1) / 2
	}

	return between(m.rng, lo+1, hi-1)
}

// wall draws the straight wall from first to last with its gap. beforeFirst
// and afterLast are the cells just past each end: an opening there keeps the
// matching end of the wall open. When both ends face openings both stay open,
// otherwise one of them would be sealed. With no aligned opening a single
// random cell is left open.
func (m *Maze) wall(c *canvas, first, last, beforeFirst, afterLast grid.Point) {
	openFirst := c.canDrawHole(beforeFirst)
	openLast := c.canDrawHole(afterLast)
	gap := grid.Point{X: -1, Y: -1}
	if !openFirst && !openLast {
		if first.X == last.X {
			gap = grid.Point{X: first.X, Y: between(m.rng, first.Y, last.Y)}
		} else {
			gap = grid.Point{X: between(m.rng, first.X, last.X), Y: first.Y}
		}
	}

	dx, dy := 0, 0
	if first.X == last.X {
		dy = 1
	} else {
		dx = 1
	}
	for p := first; ; p = p.Add(dx, dy) {
		skip := p == gap || (openFirst && p == first) || (openLast && p == last)
		if !skip {
			c.draw(p)
		}
		if p == last {
			return
		}
	}
}
