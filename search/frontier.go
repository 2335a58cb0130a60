package search

import (
	"github.com/katalvlaran/gridpath/collections"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/navigator"
)

// frontier is the strategy that distinguishes one algorithm from another.
// A Search drives one frontier (unidirectional) or two (bidirectional).
type frontier interface {
	// seed creates the root node for start.
	seed(start grid.Tile, backward bool)
	// next pops the next node to expand and marks it accepted.
	// ok is false once the frontier is exhausted.
	next() (id int, ok bool)
	// grow discovers the neighbors of the expanded node id.
	grow(id int)
	// reached returns the node through which this side reached p, if any.
	// It is the meeting test of the bidirectional searches.
	reached(p grid.Point) (id int, ok bool)
}

// frontierFactory builds a frontier searching toward target.
type frontierFactory func(tree *Tree, nav navigator.Navigator, h heuristic.Func, target grid.Point) frontier

// ---- BFS ----

// fifoFrontier is breadth-first: a point is final the first time it is seen.
type fifoFrontier struct {
	tree    *Tree
	nav     navigator.Navigator
	queue   []int
	head    int
	visited *collections.PointTable[int] // visited or enqueued
}

func newFIFO(tree *Tree, nav navigator.Navigator, _ heuristic.Func, _ grid.Point) frontier {
	g := nav.Grid()
	return &fifoFrontier{
		tree:    tree,
		nav:     nav,
		visited: collections.NewPointTable[int](g.Width(), g.Height()),
	}
}

func (f *fifoFrontier) seed(start grid.Tile, backward bool) {
	id := f.tree.addRoot(start, Score{}, backward)
	f.visited.Set(start.Point, id)
	f.queue = append(f.queue, id)
}

func (f *fifoFrontier) next() (int, bool) {
	if f.head == len(f.queue) {
		return 0, false
	}
	id := f.queue[f.head]
	f.head++

	return id, true
}

func (f *fifoFrontier) grow(id int) {
	for _, nb := range f.nav.Neighbors(f.tree.point(id)) {
		if f.visited.Has(nb.Point) {
			continue
		}
		child := f.tree.Add(nb, id, Score{})
		f.visited.Set(nb.Point, child)
		f.queue = append(f.queue, child)
	}
}

func (f *fifoFrontier) reached(p grid.Point) (int, bool) {
	return f.visited.Get(p)
}

// ---- DFS ----

// lifoFrontier is depth-first: points are accepted when popped, so the stack
// may hold several nodes for one point; all but the first are discarded.
type lifoFrontier struct {
	tree     *Tree
	nav      navigator.Navigator
	stack    []int
	expanded *collections.PointTable[int]
}

func newLIFO(tree *Tree, nav navigator.Navigator, _ heuristic.Func, _ grid.Point) frontier {
	g := nav.Grid()
	return &lifoFrontier{
		tree:     tree,
		nav:      nav,
		expanded: collections.NewPointTable[int](g.Width(), g.Height()),
	}
}

func (f *lifoFrontier) seed(start grid.Tile, backward bool) {
	f.stack = append(f.stack, f.tree.addRoot(start, Score{}, backward))
}

func (f *lifoFrontier) next() (int, bool) {
	for len(f.stack) > 0 {
		id := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		p := f.tree.point(id)
		if f.expanded.Has(p) {
			continue
		}
		f.expanded.Set(p, id)

		return id, true
	}

	return 0, false
}

// grow pushes unexpanded neighbors in reverse navigator order so the first
// neighbor ends up on top of the stack.
func (f *lifoFrontier) grow(id int) {
	nbrs := f.nav.Neighbors(f.tree.point(id))
	for i := len(nbrs) - 1; i >= 0; i-- {
		if f.expanded.Has(nbrs[i].Point) {
			continue
		}
		f.stack = append(f.stack, f.tree.Add(nbrs[i], id, Score{}))
	}
}

func (f *lifoFrontier) reached(p grid.Point) (int, bool) {
	return f.expanded.Get(p)
}

// ---- Best-First ----

// greedyFrontier ranks by heuristic only and marks points on discovery, so
// every point enters the heap at most once.
type greedyFrontier struct {
	tree    *Tree
	nav     navigator.Navigator
	h       heuristic.Func
	target  grid.Point
	open    *collections.Heap[int]
	visited *collections.PointTable[int]
}

func newGreedy(tree *Tree, nav navigator.Navigator, h heuristic.Func, target grid.Point) frontier {
	g := nav.Grid()
	f := &greedyFrontier{
		tree:    tree,
		nav:     nav,
		h:       h,
		target:  target,
		visited: collections.NewPointTable[int](g.Width(), g.Height()),
	}
	f.open = collections.NewHeap(func(a, b int) bool {
		return tree.score(a).H < tree.score(b).H
	})

	return f
}

func (f *greedyFrontier) score(p grid.Point) Score {
	return Score{Kind: ScoreHeuristic, H: f.h(p, f.target)}
}

func (f *greedyFrontier) seed(start grid.Tile, backward bool) {
	id := f.tree.addRoot(start, f.score(start.Point), backward)
	f.visited.Set(start.Point, id)
	f.open.Push(id)
}

func (f *greedyFrontier) next() (int, bool) {
	if f.open.IsEmpty() {
		return 0, false
	}

	return f.open.Pop(), true
}

func (f *greedyFrontier) grow(id int) {
	for _, nb := range f.nav.Neighbors(f.tree.point(id)) {
		if f.visited.Has(nb.Point) {
			continue
		}
		child := f.tree.Add(nb, id, f.score(nb.Point))
		f.visited.Set(nb.Point, child)
		f.open.Push(child)
	}
}

func (f *greedyFrontier) reached(p grid.Point) (int, bool) {
	return f.visited.Get(p)
}

// ---- Dijkstra / A* ----

// costFrontier ranks by F = G + H·(1+epsilon). With a nil heuristic it is
// Dijkstra (F = G). Improvements push fresh nodes; stale entries are skipped
// when their point is already closed.
type costFrontier struct {
	tree    *Tree
	nav     navigator.Navigator
	h       heuristic.Func
	epsilon float64
	kind    ScoreKind
	reverse bool // backward side: charge steps in the forward direction
	target  grid.Point
	heap    *collections.Heap[int]
	open    *collections.PointTable[int] // best node discovered per point
	closed  *collections.PointTable[int] // node that finalized each point
}

func newCost(tree *Tree, nav navigator.Navigator, h heuristic.Func, target grid.Point) frontier {
	g := nav.Grid()
	w, ht := g.Width(), g.Height()
	f := &costFrontier{
		tree:   tree,
		nav:    nav,
		h:      h,
		kind:   ScoreCost,
		target: target,
		open:   collections.NewPointTable[int](w, ht),
		closed: collections.NewPointTable[int](w, ht),
	}
	if h != nil {
		f.kind = ScoreTotal
		f.epsilon = 1 / float64(w*ht)
	}
	f.heap = collections.NewHeap(func(a, b int) bool {
		sa, sb := tree.score(a), tree.score(b)
		if sa.F != sb.F {
			return sa.F < sb.F
		}
		return sa.H < sb.H
	})

	return f
}

func newDijkstra(tree *Tree, nav navigator.Navigator, _ heuristic.Func, target grid.Point) frontier {
	return newCost(tree, nav, nil, target)
}

func newAStar(tree *Tree, nav navigator.Navigator, h heuristic.Func, target grid.Point) frontier {
	if h == nil {
		h = heuristic.Null
	}
	return newCost(tree, nav, h, target)
}

func (f *costFrontier) score(p grid.Point, g float64) Score {
	if f.h == nil {
		return Score{Kind: f.kind, G: g, F: g}
	}
	h := f.h(p, f.target)

	return Score{Kind: f.kind, G: g, H: h, F: g + h*(1+f.epsilon)}
}

func (f *costFrontier) seed(start grid.Tile, backward bool) {
	f.reverse = backward
	id := f.tree.addRoot(start, f.score(start.Point, 0), backward)
	f.open.Set(start.Point, id)
	f.heap.Push(id)
}

func (f *costFrontier) next() (int, bool) {
	for !f.heap.IsEmpty() {
		id := f.heap.Pop()
		p := f.tree.point(id)
		if f.closed.Has(p) {
			continue // stale entry
		}
		f.closed.Set(p, id)

		return id, true
	}

	return 0, false
}

func (f *costFrontier) grow(id int) {
	p := f.tree.point(id)
	g := f.tree.score(id).G
	for _, nb := range f.nav.Neighbors(p) {
		if f.closed.Has(nb.Point) {
			continue
		}
		step := f.nav.Cost(p, nb.Point)
		if f.reverse {
			step = f.nav.Cost(nb.Point, p)
		}
		ng := g + step
		if prev, ok := f.open.Get(nb.Point); ok && ng >= f.tree.score(prev).G {
			continue
		}
		child := f.tree.Add(nb, id, f.score(nb.Point, ng))
		f.open.Set(nb.Point, child)
		f.heap.Push(child)
	}
}

func (f *costFrontier) reached(p grid.Point) (int, bool) {
	return f.closed.Get(p)
}
