// Package navigator defines adjacency policies over a grid.Grid.
//
// A Navigator answers two questions for the search algorithms: which tiles can
// be entered from a point (Neighbors) and what it costs to step between two
// adjacent points (Cost). Navigators only read the grid.
//
// Neighbor order is deterministic because the depth-first visualization and
// the recorded expansion trace depend on it:
//
//	Plus:     right, down, left, up
//	Asterisk: right, down, left, up, down-right, down-left, up-left, up-right
//
// Asterisk refuses a diagonal step when both orthogonal cells flanking it are
// solid, so a path never slips between two walls that touch at a corner.
package navigator

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Registry keys reported by Type.
const (
	TypePlus     = "plus"
	TypeAsterisk = "asterisk"
)

// Navigator enumerates walkable neighbors and step costs on a grid.
type Navigator interface {
	// Neighbors returns in-bounds, non-solid tiles adjacent to p.
	Neighbors(p grid.Point) []grid.Tile
	// Cost returns the cost of stepping from a to the adjacent point b.
	Cost(a, b grid.Point) float64
	// Equals is the goal test used by the search algorithms.
	Equals(a, b grid.Point) bool
	// Type returns the registry key of the navigator.
	Type() string
	// Grid returns the grid being navigated.
	Grid() *grid.Grid
}

var (
	orthogonal = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonal   = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)

// base holds the grid and the parts shared by both concretions.
type base struct {
	g *grid.Grid
}

func (b base) Grid() *grid.Grid { return b.g }

func (b base) Equals(p, q grid.Point) bool { return p == q }

// open reports whether p is in bounds and walkable.
func (b base) open(p grid.Point) bool {
	return b.g.InBounds(p) && !b.g.IsSolid(p)
}

func (b base) orthogonals(p grid.Point, out []grid.Tile) []grid.Tile {
	for _, d := range orthogonal {
		q := p.Add(d[0], d[1])
		if b.open(q) {
			out = append(out, b.g.Get(q))
		}
	}

	return out
}

// Plus is the 4-directional navigator.
type Plus struct {
	base
}

// NewPlus returns a 4-directional navigator over g.
func NewPlus(g *grid.Grid) *Plus {
	return &Plus{base{g: g}}
}

// Neighbors returns the walkable orthogonal neighbors of p.
func (n *Plus) Neighbors(p grid.Point) []grid.Tile {
	return n.orthogonals(p, make([]grid.Tile, 0, 4))
}

// Cost is the path cost of the destination tile; the origin does not matter.
func (n *Plus) Cost(_, b grid.Point) float64 {
	return n.g.Get(b).Data.PathCost
}

// Type returns TypePlus.
func (n *Plus) Type() string { return TypePlus }

// Asterisk is the 8-directional navigator with corner-cutting prevention.
type Asterisk struct {
	base
}

// NewAsterisk returns an 8-directional navigator over g.
func NewAsterisk(g *grid.Grid) *Asterisk {
	return &Asterisk{base{g: g}}
}

// Neighbors returns orthogonal neighbors first, then each diagonal neighbor
// whose horizontal or vertical flanking cell is walkable.
func (n *Asterisk) Neighbors(p grid.Point) []grid.Tile {
	out := n.orthogonals(p, make([]grid.Tile, 0, 8))
	for _, d := range diagonal {
		q := p.Add(d[0], d[1])
		if !n.open(q) {
			continue
		}
		if n.open(p.Add(d[0], 0)) || n.open(p.Add(0, d[1])) {
			out = append(out, n.g.Get(q))
		}
	}

	return out
}

// Cost is the euclidean step length scaled by the destination's path cost,
// so a diagonal step on empty ground costs √2.
func (n *Asterisk) Cost(a, b grid.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx+dy*dy) * n.g.Get(b).Data.PathCost
}

// Type returns TypeAsterisk.
func (n *Asterisk) Type() string { return TypeAsterisk }
