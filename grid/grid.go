package grid

import "fmt"

// Grid is a Width×Height matrix of tiles. Every in-bounds coordinate holds
// exactly one tile; a tile's Point never changes after construction, only its Data.
//
// Grid is single-owner: it performs no locking.
type Grid struct {
	width, height int
	tiles         []Tile // row-major: index = y*width + x
}

// New constructs a grid of empty tiles.
// Returns ErrBadSize if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[g.index(x, y)] = Tile{Point: Point{X: x, Y: y}, Data: EmptyTileData}
		}
	}

	return g, nil
}

// MustNew is New for sizes known to be valid; it panics on error.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index converts (x,y) to the row-major slot without bounds checks.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Index converts p to its row-major index. Panics if p is out of bounds.
func (g *Grid) Index(p Point) int {
	g.mustContain(p)

	return g.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

func (g *Grid) mustContain(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: point %v out of bounds for %dx%d grid", p, g.width, g.height))
	}
}

// Get returns a copy of the tile at p.
func (g *Grid) Get(p Point) Tile {
	return g.tiles[g.Index(p)]
}

// Mutate replaces the data of the tile at p.
func (g *Grid) Mutate(p Point, data TileData) {
	g.tiles[g.Index(p)].Data = data
}

// MutateTile writes tile.Data at tile.Point.
func (g *Grid) MutateTile(tile Tile) {
	g.Mutate(tile.Point, tile.Data)
}

// MutateDefault resets the tile at p to the canonical solid or empty payload.
func (g *Grid) MutateDefault(p Point, solid bool) {
	if solid {
		g.Mutate(p, SolidTileData)
		return
	}
	g.Mutate(p, EmptyTileData)
}

// IsSolid reports whether the tile at p is impassable.
func (g *Grid) IsSolid(p Point) bool {
	return g.tiles[g.Index(p)].Data.IsSolid
}

// IsEmpty reports whether the tile at p is neither solid nor weighted.
// A weighted tile is walkable but not empty.
func (g *Grid) IsEmpty(p Point) bool {
	d := g.tiles[g.Index(p)].Data
	return d.PathCost == 1 && !d.IsSolid
}

// Walkable reports whether the tile at p can be entered.
func (g *Grid) Walkable(p Point) bool {
	return !g.IsSolid(p)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		tiles:  make([]Tile, len(g.tiles)),
	}
	copy(c.tiles, g.tiles)

	return c
}

// CloneNewSize returns a deep copy resized to width×height. Cells outside the
// source grid are empty; cells outside the new bounds are dropped.
// Returns ErrBadSize if width or height is not positive.
func (g *Grid) CloneNewSize(width, height int) (*Grid, error) {
	c, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height && y < g.height; y++ {
		for x := 0; x < width && x < g.width; x++ {
			c.tiles[c.index(x, y)].Data = g.tiles[g.index(x, y)].Data
		}
	}

	return c, nil
}

// Fill writes data into every tile of the grid.
func (g *Grid) Fill(data TileData) {
	for i := range g.tiles {
		g.tiles[i].Data = data
	}
}

// Tiles returns copies of all tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)

	return out
}
