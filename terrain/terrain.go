package terrain

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/collections"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidSkew is returned by NewMaze for an unknown Skew value.
var ErrInvalidSkew = errors.New("terrain: invalid skew")

// Generator draws terrain onto grids.
type Generator interface {
	// Generate returns a new grid of the generator's size with terrain drawn
	// over (1,1)..(W-2,H-2) and its border.
	Generate() *grid.Grid
	// GenerateRegion returns a new grid with terrain drawn over the inclusive
	// rectangle [topLeft, bottomRight] and its border.
	GenerateRegion(topLeft, bottomRight grid.Point) *grid.Grid
	// Apply draws over [topLeft, bottomRight] of g in place.
	Apply(g *grid.Grid, topLeft, bottomRight grid.Point)
}

// Option mutates generator Options.
type Option func(*Options)

// Options configures a generator.
//
// Seed   – RNG seed; 0 selects the default seed. Ignored when Rand is set.
// Rand   – caller-owned RNG; takes precedence over Seed.
// Ignore – points that are never drawn.
// Tile   – payload drawn for walls and scatter. Default is grid.SolidTileData.
type Options struct {
	Seed   int64
	Rand   *rand.Rand
	Ignore []grid.Point
	Tile   grid.TileData
}

// DefaultOptions returns solid walls, seed 0 and no protected points.
func DefaultOptions() Options {
	return Options{Tile: grid.SolidTileData}
}

// WithSeed selects a deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an RNG. The generator advances it.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithIgnore adds protected points. Out-of-bounds points are ignored at draw time.
func WithIgnore(points ...grid.Point) Option {
	return func(o *Options) { o.Ignore = append(o.Ignore, points...) }
}

// WithTile sets the drawn payload.
func WithTile(data grid.TileData) Option {
	return func(o *Options) { o.Tile = data }
}

// base is the state shared by every generator.
type base struct {
	width, height int
	ignore        []grid.Point
	tile          grid.TileData
	rng           *rand.Rand
}

func newBase(width, height int, opts []Option) (base, error) {
	if width <= 0 || height <= 0 {
		return base{}, fmt.Errorf("%w: terrain %dx%d", grid.ErrBadSize, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return base{
		width:  width,
		height: height,
		ignore: append([]grid.Point(nil), o.Ignore...),
		tile:   o.Tile,
		rng:    rng,
	}, nil
}

// Width returns the width of grids built by Generate.
func (b *base) Width() int { return b.width }

// Height returns the height of grids built by Generate.
func (b *base) Height() int { return b.height }

// Ignored returns a copy of the protected points.
func (b *base) Ignored() []grid.Point {
	return append([]grid.Point(nil), b.ignore...)
}

// defaultRegion is the interior of a width×height grid.
func (b *base) defaultRegion() (grid.Point, grid.Point) {
	return grid.Point{X: 1, Y: 1}, grid.Point{X: b.width - 2, Y: b.height - 2}
}

// canvas binds a grid to the protected set for one Apply call.
func (b *base) canvas(g *grid.Grid) *canvas {
	c := &canvas{
		g:      g,
		tile:   b.tile,
		ignore: collections.NewPointSet(g.Width(), g.Height()),
	}
	for _, p := range b.ignore {
		if g.InBounds(p) {
			c.ignore.Add(p)
		}
	}

	return c
}

// canvas is a grid plus the points that must stay untouched.
type canvas struct {
	g      *grid.Grid
	tile   grid.TileData
	ignore *collections.PointSet
}

// draw writes the terrain tile at p unless p is protected or out of bounds.
func (c *canvas) draw(p grid.Point) {
	if !c.g.InBounds(p) || c.ignore.Has(p) {
		return
	}
	c.g.Mutate(p, c.tile)
}

// canDrawHole reports whether p is an in-bounds, open, unweighted tile.
func (c *canvas) canDrawHole(p grid.Point) bool {
	if !c.g.InBounds(p) {
		return false
	}
	d := c.g.Get(p).Data

	return d.PathCost == 1 && !d.IsSolid
}

// border draws the ring one cell outside [tl, br].
func (c *canvas) border(tl, br grid.Point) {
	for x := tl.X - 1; x <= br.X+1; x++ {
		c.draw(grid.Point{X: x, Y: tl.Y - 1})
		c.draw(grid.Point{X: x, Y: br.Y + 1})
	}
	for y := tl.Y; y <= br.Y; y++ {
		c.draw(grid.Point{X: tl.X - 1, Y: y})
		c.draw(grid.Point{X: br.X + 1, Y: y})
	}
}

// empty reports whether [tl, br] holds no cell.
func empty(tl, br grid.Point) bool {
	return tl.X > br.X || tl.Y > br.Y
}
