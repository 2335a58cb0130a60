package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/navigator"
	"github.com/katalvlaran/gridpath/search"
)

func tileAt(x, y int) grid.Tile {
	return grid.Tile{Point: grid.Point{X: x, Y: y}, Data: grid.EmptyTileData}
}

// chain builds root(0,0) → (1,0) → (2,0) → (2,1) plus a side branch (0,1).
func chain() (*search.Tree, int) {
	t := search.NewTree(8)
	root := t.Add(tileAt(0, 0), search.NoParent, search.Score{})
	a := t.Add(tileAt(1, 0), root, search.Score{})
	t.Add(tileAt(0, 1), root, search.Score{})
	b := t.Add(tileAt(2, 0), a, search.Score{})
	leaf := t.Add(tileAt(2, 1), b, search.Score{})

	return t, leaf
}

func TestTree_Links(t *testing.T) {
	tree, leaf := chain()
	require.Equal(t, 5, tree.Len())

	root := tree.Node(0)
	assert.Equal(t, search.NoParent, root.Parent)
	assert.Equal(t, []int{1, 2}, root.Children)

	n := tree.Node(leaf)
	assert.Equal(t, leaf, n.ID)
	assert.Equal(t, 3, n.Parent)
	assert.Empty(t, n.Children)
}

func TestTree_NodeIsCopy(t *testing.T) {
	tree, _ := chain()
	n := tree.Node(0)
	n.Children[0] = 77
	assert.Equal(t, []int{1, 2}, tree.Node(0).Children)
}

func TestReconstructPath(t *testing.T) {
	tree, leaf := chain()

	fwd := search.ReconstructPath(tree, leaf)
	rev := search.ReconstructPathReversed(tree, leaf)
	require.Len(t, fwd, 3)
	assert.Equal(t, []grid.Tile{tileAt(1, 0), tileAt(2, 0), tileAt(2, 1)}, fwd)
	assert.Equal(t, fwd, search.Reverse(rev))

	// The root alone reconstructs to an empty, non-nil path.
	empty := search.ReconstructPath(tree, 0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReverse_DoesNotAlias(t *testing.T) {
	in := []grid.Tile{tileAt(0, 0), tileAt(1, 0)}
	out := search.Reverse(in)
	out[0] = tileAt(5, 5)
	assert.Equal(t, tileAt(0, 0), in[0])
	assert.Empty(t, search.Reverse(nil))
}

func TestPathCost(t *testing.T) {
	g := grid.MustParse(
		".3",
		"..",
	)
	plus := navigator.NewPlus(g)
	path := []grid.Tile{g.Get(grid.Point{X: 1, Y: 0}), g.Get(grid.Point{X: 1, Y: 1})}
	assert.InDelta(t, 4.0, search.PathCost(plus, grid.Point{}, path), costDelta)
	assert.Zero(t, search.PathCost(plus, grid.Point{}, nil))
}
