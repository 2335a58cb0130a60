package grid

// Components labels the 4-connected regions of walkable tiles. Each region is
// a slice of row-major indices in discovery order; regions are ordered by
// their first tile. Solid tiles belong to no region.
//
// Time:   O(W×H).
// Memory: O(W×H) for the seen flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.tiles))
	var comps [][]int
	for i, tile := range g.tiles {
		if tile.Data.IsSolid || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}

	return comps
}

// Connected reports whether a and b are walkable and share a 4-connected
// region. It panics when either point is out of bounds.
func (g *Grid) Connected(a, b Point) bool {
	ia, ib := g.Index(a), g.Index(b)
	if g.tiles[ia].Data.IsSolid || g.tiles[ib].Data.IsSolid {
		return false
	}
	seen := make([]bool, len(g.tiles))
	g.flood(ia, seen)

	return seen[ib]
}

// flood collects the region around walkable index start, marking it in seen.
func (g *Grid) flood(start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		p := g.Coordinate(queue[qi])
		for _, q := range [4]Point{p.Add(1, 0), p.Add(-1, 0), p.Add(0, 1), p.Add(0, -1)} {
			if !g.InBounds(q) {
				continue
			}
			i := g.index(q.X, q.Y)
			if seen[i] || g.tiles[i].Data.IsSolid {
				continue
			}
			seen[i] = true
			queue = append(queue, i)
		}
	}

	return queue
}
