package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/navigator"
)

// Algorithm names reported by AlgorithmName; they double as builder keys.
const (
	AlgorithmBFS        = "bfs"
	AlgorithmDFS        = "dfs"
	AlgorithmDijkstra   = "dijkstra"
	AlgorithmBestFirst  = "best-first"
	AlgorithmAStar      = "a*"
	AlgorithmBiBFS      = "bi-bfs"
	AlgorithmBiDijkstra = "bi-dijkstra"
	AlgorithmBiAStar    = "bi-a*"
)

// Pathfinder is the contract shared by every algorithm.
type Pathfinder interface {
	// FindPath returns the tiles from the step after initial up to and
	// including goal, or an empty slice when goal is unreachable.
	FindPath(initial, goal grid.Point) []grid.Tile
	// RecentGenerations returns the expansion trace of the last FindPath call.
	RecentGenerations() []Generation
	// RecentNodes returns len(RecentGenerations()).
	RecentNodes() int
	// AlgorithmName returns the registry key of the algorithm.
	AlgorithmName() string
	// Navigator returns the adjacency policy in use.
	Navigator() navigator.Navigator
}

// Search runs one frontier strategy, or two facing each other when
// bidirectional. It is not safe for concurrent use: each call overwrites the
// recorded trace.
type Search struct {
	recorder
	name          string
	nav           navigator.Navigator
	h             heuristic.Func
	bidirectional bool
	newFrontier   frontierFactory
}

var _ Pathfinder = (*Search)(nil)

func newSearch(name string, nav navigator.Navigator, h heuristic.Func, bidirectional bool, f frontierFactory) *Search {
	return &Search{
		name:          name,
		nav:           nav,
		h:             h,
		bidirectional: bidirectional,
		newFrontier:   f,
	}
}

// NewBFS returns a breadth-first search.
func NewBFS(nav navigator.Navigator) *Search {
	return newSearch(AlgorithmBFS, nav, nil, false, newFIFO)
}

// NewDFS returns a depth-first search. Its paths are not shortest.
func NewDFS(nav navigator.Navigator) *Search {
	return newSearch(AlgorithmDFS, nav, nil, false, newLIFO)
}

// NewDijkstra returns a uniform-cost search.
func NewDijkstra(nav navigator.Navigator) *Search {
	return newSearch(AlgorithmDijkstra, nav, nil, false, newDijkstra)
}

// NewBestFirst returns a greedy best-first search ranked by h alone.
// A nil h behaves like heuristic.Null.
func NewBestFirst(nav navigator.Navigator, h heuristic.Func) *Search {
	if h == nil {
		h = heuristic.Null
	}
	return newSearch(AlgorithmBestFirst, nav, h, false, newGreedy)
}

// NewAStar returns an A* search. With an admissible h the path cost equals
// Dijkstra's. A nil h behaves like heuristic.Null.
func NewAStar(nav navigator.Navigator, h heuristic.Func) *Search {
	return newSearch(AlgorithmAStar, nav, h, false, newAStar)
}

// NewBiBFS returns a bidirectional breadth-first search. On Plus grids its
// paths have as many steps as BFS's. On Asterisk grids the first meeting
// point can sit off the shortest diagonal, so the path may be longer.
func NewBiBFS(nav navigator.Navigator) *Search {
	return newSearch(AlgorithmBiBFS, nav, nil, true, newFIFO)
}

// NewBiDijkstra returns a bidirectional uniform-cost search. It stops at the
// first point closed by both sides, so on weighted grids its path may cost
// more than Dijkstra's.
func NewBiDijkstra(nav navigator.Navigator) *Search {
	return newSearch(AlgorithmBiDijkstra, nav, nil, true, newDijkstra)
}

// NewBiAStar returns a bidirectional A*: the forward side aims at the goal,
// the backward side at the initial point. It stops at the first point closed
// by both sides and does not guarantee a shortest path.
func NewBiAStar(nav navigator.Navigator, h heuristic.Func) *Search {
	return newSearch(AlgorithmBiAStar, nav, h, true, newAStar)
}

// AlgorithmName returns the registry key of the algorithm.
func (s *Search) AlgorithmName() string { return s.name }

// Navigator returns the adjacency policy in use.
func (s *Search) Navigator() navigator.Navigator { return s.nav }

// Bidirectional reports whether the search grows from both endpoints.
func (s *Search) Bidirectional() bool { return s.bidirectional }

// FindPath searches from initial to goal. Both points must be in bounds.
// The returned path excludes initial; it is empty when goal is unreachable.
// Previous trace state is discarded.
func (s *Search) FindPath(initial, goal grid.Point) []grid.Tile {
	g := s.nav.Grid()
	s.reset(g)

	fwd := s.newFrontier(s.tree, s.nav, s.h, goal)
	fwd.seed(g.Get(initial), false)
	if !s.bidirectional {
		return s.walk(fwd, goal)
	}

	bwd := s.newFrontier(s.tree, s.nav, s.h, initial)
	bwd.seed(g.Get(goal), true)

	return s.meet(fwd, bwd, goal)
}

// walk expands f until the goal is accepted or the frontier runs dry.
func (s *Search) walk(f frontier, goal grid.Point) []grid.Tile {
	for {
		id, ok := f.next()
		if !ok {
			return []grid.Tile{}
		}
		s.expand(id)
		if s.nav.Equals(s.tree.point(id), goal) {
			return ReconstructPath(s.tree, id)
		}
		f.grow(id)
	}
}

// meet alternates one expansion per side. After each expansion the point is
// looked up on the other side; the first hit ends the search.
func (s *Search) meet(fwd, bwd frontier, goal grid.Point) []grid.Tile {
	for {
		id, ok := fwd.next()
		if !ok {
			return []grid.Tile{}
		}
		s.expand(id)
		fwd.grow(id)
		if other, hit := bwd.reached(s.tree.point(id)); hit {
			return s.stitch(id, other, false, goal)
		}

		id, ok = bwd.next()
		if !ok {
			return []grid.Tile{}
		}
		s.expand(id)
		bwd.grow(id)
		if other, hit := fwd.reached(s.tree.point(id)); hit {
			return s.stitch(other, id, true, goal)
		}
	}
}

// stitch joins the forward node f and backward node b that share a point.
// The expanding side contributes its parent chain, the other side its full
// chain, and the goal tile closes the path. When the expanding node is a root
// the result degenerates to the goal tile alone.
func (s *Search) stitch(f, b int, backwardExpanded bool, goal grid.Point) []grid.Tile {
	goalTile := s.nav.Grid().Get(goal)
	expanding := f
	if backwardExpanded {
		expanding = b
	}
	if s.tree.parent(expanding) == NoParent {
		return []grid.Tile{goalTile}
	}

	var head, tail []grid.Tile
	if backwardExpanded {
		head = ReconstructPath(s.tree, f)
		tail = Reverse(ReconstructPath(s.tree, s.tree.parent(b)))
	} else {
		head = ReconstructPath(s.tree, s.tree.parent(f))
		tail = Reverse(ReconstructPath(s.tree, b))
	}

	path := make([]grid.Tile, 0, len(head)+len(tail)+1)
	path = append(path, head...)
	path = append(path, tail...)

	return append(path, goalTile)
}
