package terrain

import "github.com/katalvlaran/gridpath/grid"

// Random scatters the terrain tile over a region, one cell in four on average.
type Random struct {
	base
}

var _ Generator = (*Random)(nil)

// NewRandom returns a scatter generator for width×height grids.
func NewRandom(width, height int, opts ...Option) (*Random, error) {
	b, err := newBase(width, height, opts)
	if err != nil {
		return nil, err
	}

	return &Random{base: b}, nil
}

// Generate returns a new grid scattered over its whole area.
func (r *Random) Generate() *grid.Grid {
	tl, br := r.defaultRegion()
	return r.GenerateRegion(tl, br)
}

// GenerateRegion returns a new grid scattered over [topLeft, bottomRight] and its border.
func (r *Random) GenerateRegion(topLeft, bottomRight grid.Point) *grid.Grid {
	g := grid.MustNew(r.width, r.height)
	r.Apply(g, topLeft, bottomRight)

	return g
}

// Apply draws each cell of [topLeft-1, bottomRight+1] with probability 1/4.
// A die is rolled for every cell, protected or not, so the stream does not
// depend on the protected set.
func (r *Random) Apply(g *grid.Grid, topLeft, bottomRight grid.Point) {
	tl, br := topLeft, bottomRight
	if empty(tl, br) {
		return
	}
	c := r.canvas(g)
	for y := tl.Y - 1; y <= br.Y+1; y++ {
		for x := tl.X - 1; x <= br.X+1; x++ {
			if r.rng.Intn(4) == 0 {
				c.draw(grid.Point{X: x, Y: y})
			}
		}
	}
}
