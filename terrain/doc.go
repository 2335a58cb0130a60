// Package terrain fills grids with obstacles: recursive-division mazes and
// uniformly random scatter.
//
// What:
//
//   - Generator is the common surface: Generate builds a fresh grid,
//     GenerateRegion limits drawing to a rectangle, Apply draws into an
//     existing grid.
//   - Maze bisects chambers with single-gap walls until they are too narrow
//     to split. A Skew biases the choice between vertical and horizontal walls.
//   - Random draws each cell with probability 1/4.
//
// Protected points:
//
//	Points passed through WithIgnore are never drawn. Callers use them to
//	keep the initial and goal tiles walkable.
//
// Region:
//
//	A region is an inclusive rectangle [topLeft, bottomRight]. Both
//	generators also draw a one-cell border around it (clipped to the grid).
//	Generate uses (1,1)..(W-2,H-2), so the border is the grid edge.
//
// Determinism:
//
//	Every generator owns a *rand.Rand. WithSeed(0) and no seed at all both
//	select a fixed default seed, so identical options produce identical
//	terrain. WithRand injects a caller-owned source. A generator is not safe
//	for concurrent use.
//
// Maze details:
//
//   - Orientation: SkewNone splits vertically when width ≥ height,
//     SkewVertical when 2·width ≥ height, SkewHorizontal when width ≥ 2·height.
//   - Wall position over a span of n cells: the midpoint when n ≥ 20, one of
//     the two central cells when 6 ≤ n ≤ 19, any interior cell otherwise.
//   - Gap: if the cell just past an end of the wall is an open, unweighted
//     tile, that end stays open (both ends when both qualify, so no earlier
//     opening is sealed); otherwise one random wall cell stays open.
//   - A chamber is final when the dimension it would be cut along is ≤ 2.
//
// Errors:
//
//   - ErrInvalidSkew: NewMaze got a Skew outside the three constants.
//   - grid.ErrBadSize: width or height is not positive.
//
// Complexity:
//
//   - Maze: O(W×H·log(max(W,H))) draws.
//   - Random: O(W×H).
package terrain
