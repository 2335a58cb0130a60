// Package builder assembles pathfinders and terrain generators from string
// keys, the way a UI or a command line selects them.
//
// Pathfinders:
//
//	pf, err := builder.NewPathfinder(g).
//	    Navigator("plus").
//	    Algorithm("a*").
//	    Heuristic("manhattan").
//	    Build()
//
//	Keys are case-insensitive and come from closed registries:
//
//	  - navigators: plus, asterisk
//	  - algorithms: bfs, dfs, dijkstra, best-first, a*, bi-bfs, bi-dijkstra, bi-a*
//	  - heuristics: manhattan, euclidean, chebyshev, octile, null
//
//	Defaults are plus / a* / manhattan. The heuristic is consulted only by
//	best-first, a* and bi-a*.
//
// Terrain:
//
//	gen, err := builder.NewTerrain(64, 32).
//	    Generator("maze-vskew").
//	    Ignore(start, goal).
//	    Seed(7).
//	    Build()
//
//	Generator keys: maze, maze-vskew, maze-hskew, random. Default is maze.
//
// Errors:
//
//	Every Build failure matches errors.Is(err, ErrConfiguration). The specific
//	cause is also reachable: ErrUnknownNavigator, ErrUnknownAlgorithm,
//	ErrUnknownHeuristic, ErrUnknownGenerator, ErrNoBidirectional, ErrNilGrid,
//	or an error from the terrain package (terrain.ErrInvalidSkew,
//	grid.ErrBadSize).
//
// Bidirectional keys:
//
//	Bidirectional maps a unidirectional key to its bidirectional twin
//	(bfs → bi-bfs, dijkstra → bi-dijkstra, a* → bi-a*). IsBidirectional
//	reports whether a key already names one.
package builder
