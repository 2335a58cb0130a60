// Package search implements the grid pathfinding algorithms and the ordered
// expansion trace they leave behind for replay.
//
// What:
//
//   - BFS          FIFO frontier; first visit is final; fewest steps.
//   - DFS          LIFO frontier; neighbors pushed in reverse so the walk
//     follows navigator order; not optimal.
//   - Dijkstra     min-heap on accumulated cost g; each point finalized once.
//   - Best-First   min-heap on the heuristic h only; points are marked on
//     discovery; fast, not optimal.
//   - A*           min-heap on f = g + h·(1+p) with p = 1/(W·H); a point in
//     the open set reached again with strictly lower g gets a fresh node.
//   - Bi-BFS, Bi-Dijkstra, Bi-A*: a forward search from the initial point and
//     a backward one from the goal, one expansion each per round, stopping
//     when a side expands a point the other side already reached.
//
// Every algorithm is a *Search configured with a frontier strategy. All share
// one contract:
//
//	path := s.FindPath(initial, goal) // excludes initial; [] when unreachable
//	trace := s.RecentGenerations()    // expansion order of the last call
//	n := s.RecentNodes()              // len(trace)
//
// "No path" is not an error. Search never mutates the grid and has no
// suspension points: FindPath runs to completion.
//
// Nodes:
//
//	Visited tiles form a tree held in an arena (Tree). Parent links are
//	indices, so paths are rebuilt by walking indices back to a root. Each
//	node records the children created when it was expanded; the trace
//	exposes them so a caller can animate discoveries.
//
// Stale heap entries:
//
//	The heap has no decrease-key. Dijkstra and A* push a new node when they
//	improve a point and skip entries whose point is already closed when
//	popped. This keeps the visitation order reproducible.
//
// Optimality of the bidirectional variants:
//
//	Bi-BFS on a 4-connected grid returns a shortest path. On an 8-connected
//	grid it stops at the first point the other side has discovered, which
//	may lie on a detour: an open 5×5 Asterisk grid corner to corner gives 5
//	steps where BFS gives 4. Bi-Dijkstra and
//	Bi-A* stop at the first point closed by both sides, which is not a proof
//	of optimality; on weighted grids, and for Bi-A* in general, the stitched
//	path can be longer than the unidirectional result. This is accepted
//	behavior, not a bug.
//
// Complexity (N = W×H):
//
//   - BFS, DFS, Best-First: O(N) node visits.
//   - Dijkstra, A*: O(E log E) with E ≤ 8N heap entries under lazy deletion.
//   - Memory: O(N) for the dense point tables plus the node arena.
package search
