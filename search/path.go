package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/navigator"
)

// ReconstructPathReversed walks parent links from id up to its root and
// returns the tiles from id back toward the root, excluding the root itself.
func ReconstructPathReversed(t *Tree, id int) []grid.Tile {
	out := []grid.Tile{}
	for cur := id; cur != NoParent && t.parent(cur) != NoParent; cur = t.parent(cur) {
		out = append(out, t.nodes[cur].Tile)
	}

	return out
}

// ReconstructPath returns the tiles from just after the root down to id.
// The root is excluded; callers that want it prepend the initial tile.
func ReconstructPath(t *Tree, id int) []grid.Tile {
	return Reverse(ReconstructPathReversed(t, id))
}

// Reverse returns a reversed copy of tiles.
func Reverse(tiles []grid.Tile) []grid.Tile {
	out := make([]grid.Tile, len(tiles))
	for i, tile := range tiles {
		out[len(tiles)-1-i] = tile
	}

	return out
}

// PathCost totals the navigator cost of walking path starting at initial.
// An empty path costs 0.
func PathCost(nav navigator.Navigator, initial grid.Point, path []grid.Tile) float64 {
	total := 0.0
	prev := initial
	for _, tile := range path {
		total += nav.Cost(prev, tile.Point)
		prev = tile.Point
	}

	return total
}
