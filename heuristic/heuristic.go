// Package heuristic provides pure distance estimates between grid points for
// the informed search algorithms (best-first, A*).
//
// All functions are admissible for a uniform-cost grid under the navigator
// they are usually paired with:
//
//   - Manhattan: 4-directional movement.
//   - Euclidean: any movement; never overestimates.
//   - Chebyshev: 8-directional movement where a diagonal costs 1.
//   - Octile:    8-directional movement where a diagonal costs √2.
//   - Null:      always 0; turns A* into Dijkstra.
package heuristic

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Func estimates the remaining cost from a to b.
type Func func(a, b grid.Point) float64

func deltas(a, b grid.Point) (float64, float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b grid.Point) float64 {
	dx, dy := deltas(a, b)
	return dx + dy
}

// Euclidean returns the straight-line distance.
func Euclidean(a, b grid.Point) float64 {
	dx, dy := deltas(a, b)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b grid.Point) float64 {
	dx, dy := deltas(a, b)
	return math.Max(dx, dy)
}

// Octile returns the cost of the shortest 8-directional route with unit
// orthogonal steps and √2 diagonal steps.
func Octile(a, b grid.Point) float64 {
	dx, dy := deltas(a, b)
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

// Null always returns 0.
func Null(_, _ grid.Point) float64 {
	return 0
}
