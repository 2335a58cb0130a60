package search

import "github.com/katalvlaran/gridpath/grid"

// Generation is one expansion event of a search: the node popped from the
// frontier and accepted, together with the children it discovered.
// Values are fully owned copies and stay valid after later FindPath calls.
type Generation struct {
	Tile     grid.Tile
	Parent   grid.Point // meaningless when Root is true
	Root     bool
	Children []grid.Tile
	Score    Score
	Backward bool
}

// recorder keeps the arena and the expansion order of the most recent call.
type recorder struct {
	tree  *Tree
	order []int
}

// reset drops the previous call's state.
func (r *recorder) reset(g *grid.Grid) {
	r.tree = NewTree(g.Width() * g.Height())
	r.order = r.order[:0]
}

// expand appends node id to the trace.
func (r *recorder) expand(id int) {
	r.order = append(r.order, id)
}

// RecentGenerations returns the expansion trace of the last FindPath call in
// visitation order. Each call builds fresh copies.
func (r *recorder) RecentGenerations() []Generation {
	out := make([]Generation, len(r.order))
	for i, id := range r.order {
		n := r.tree.nodes[id]
		gen := Generation{
			Tile:     n.Tile,
			Root:     n.Parent == NoParent,
			Children: make([]grid.Tile, len(n.Children)),
			Score:    n.Score,
			Backward: n.Backward,
		}
		if !gen.Root {
			gen.Parent = r.tree.point(n.Parent)
		}
		for j, c := range n.Children {
			gen.Children[j] = r.tree.nodes[c].Tile
		}
		out[i] = gen
	}

	return out
}

// RecentNodes returns the number of expansions in the last FindPath call.
func (r *recorder) RecentNodes() int {
	return len(r.order)
}
