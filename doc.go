// Package gridpath is a grid pathfinding engine: tile grids, adjacency
// policies, eight search strategies with full expansion traces, procedural
// terrain and a terminal replay of each search.
//
// What is inside?
//
//	grid/        - Grid, Point, Tile, TileData and the ASCII map format
//	collections/ - PointSet, PointTable and a generic binary Heap
//	heuristic/   - Manhattan, Euclidean, Chebyshev, Octile, Null
//	navigator/   - Plus (4-way) and Asterisk (8-way, no corner cutting)
//	search/      - BFS, DFS, Dijkstra, Best-First, A* and the
//	               bidirectional BFS, Dijkstra and A*
//	terrain/     - recursive-division mazes and random noise
//	builder/     - string-keyed construction of pathfinders and generators
//	replay/      - frame rendering and a tcell player for expansion traces
//	cmd/gridpath - command-line front end
//
// Quick start:
//
//	g := grid.MustNew(41, 21)
//	gen, _ := builder.NewTerrain(41, 21).Ignore(start, goal).Build()
//	gen.Apply(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 39, Y: 19})
//	pf, _ := builder.NewPathfinder(g).Algorithm("bi-a*").Build()
//	path := pf.FindPath(start, goal)
//	fmt.Println(replay.Text(g, path, pf.RecentGenerations()))
//
// Searches are deterministic for a given grid, navigator and endpoints.
// A Pathfinder keeps the trace of its most recent call only and is not safe
// for concurrent use; build one per goroutine.
package gridpath
