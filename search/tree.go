package search

import "github.com/katalvlaran/gridpath/grid"

// NoParent marks a root node.
const NoParent = -1

// ScoreKind tags which fields of a Score are meaningful.
type ScoreKind uint8

const (
	// ScoreNone is used by BFS and DFS.
	ScoreNone ScoreKind = iota
	// ScoreCost carries the accumulated path cost G (Dijkstra).
	ScoreCost
	// ScoreHeuristic carries the heuristic estimate H (Best-First).
	ScoreHeuristic
	// ScoreTotal carries G, H and the ranking key F (A*).
	ScoreTotal
)

// Score is the algorithm-specific payload of a node.
// For ScoreTotal, H is the raw heuristic; F includes the tie-breaking epsilon.
type Score struct {
	Kind ScoreKind
	G    float64
	H    float64
	F    float64
}

// Node is one vertex of the search tree.
type Node struct {
	ID       int
	Tile     grid.Tile
	Parent   int   // NoParent for roots
	Children []int // nodes created while this node was expanded
	Score    Score
	Backward bool // grown from the goal in a bidirectional search
}

// Tree is an arena of nodes addressed by index. A Tree belongs to a single
// FindPath call; bidirectional searches keep both roots in the same arena.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty arena with room for capacity nodes.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]Node, 0, capacity)}
}

// Add appends a node and links it under parent (NoParent for a root).
// A child inherits its parent's Backward flag. Returns the new node's ID.
func (t *Tree) Add(tile grid.Tile, parent int, score Score) int {
	id := len(t.nodes)
	n := Node{ID: id, Tile: tile, Parent: parent, Score: score}
	if parent != NoParent {
		n.Backward = t.nodes[parent].Backward
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	t.nodes = append(t.nodes, n)

	return id
}

// addRoot appends a root node for the forward or backward side.
func (t *Tree) addRoot(tile grid.Tile, score Score, backward bool) int {
	id := t.Add(tile, NoParent, score)
	t.nodes[id].Backward = backward

	return id
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns a copy of node id; its Children slice is not shared.
func (t *Tree) Node(id int) Node {
	n := t.nodes[id]
	n.Children = append([]int(nil), n.Children...)

	return n
}

func (t *Tree) point(id int) grid.Point { return t.nodes[id].Tile.Point }

func (t *Tree) parent(id int) int { return t.nodes[id].Parent }

func (t *Tree) score(id int) Score { return t.nodes[id].Score }
