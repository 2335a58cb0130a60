package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

func TestHeuristics_Values(t *testing.T) {
	a, b := grid.Point{X: 1, Y: 1}, grid.Point{X: 4, Y: 5} // dx=3, dy=4
	cases := []struct {
		name string
		fn   heuristic.Func
		want float64
	}{
		{"manhattan", heuristic.Manhattan, 7},
		{"euclidean", heuristic.Euclidean, 5},
		{"chebyshev", heuristic.Chebyshev, 4},
		{"octile", heuristic.Octile, 1 + 3*math.Sqrt2},
		{"null", heuristic.Null, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.fn(a, b), 1e-9)
			assert.InDelta(t, tc.want, tc.fn(b, a), 1e-9, "must be symmetric")
			assert.Zero(t, tc.fn(a, a))
		})
	}
}

// TestHeuristics_Ordering checks the dominance chain that keeps each one
// admissible for its navigator: null ≤ chebyshev ≤ euclidean ≤ octile ≤ manhattan.
func TestHeuristics_Ordering(t *testing.T) {
	origin := grid.Point{}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := grid.Point{X: x, Y: y}
			n := heuristic.Null(origin, p)
			c := heuristic.Chebyshev(origin, p)
			e := heuristic.Euclidean(origin, p)
			o := heuristic.Octile(origin, p)
			m := heuristic.Manhattan(origin, p)
			assert.LessOrEqual(t, n, c)
			assert.LessOrEqual(t, c, e+1e-9)
			assert.LessOrEqual(t, e, o+1e-9)
			assert.LessOrEqual(t, o, m+1e-9)
		}
	}
}
