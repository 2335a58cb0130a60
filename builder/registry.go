// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// registry.go - closed registries of constructor closures.
//
// Each registry maps a lower-case key to a closure that builds the component.
// Lookups normalize the key first; unknown keys are reported by the caller
// with the matching sentinel.

package builder

import (
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/navigator"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
)

type navigatorCtor func(g *grid.Grid) navigator.Navigator

type algorithmCtor func(nav navigator.Navigator, h heuristic.Func) *search.Search

type generatorCtor func(width, height int, opts ...terrain.Option) (terrain.Generator, error)

var navigators = map[string]navigatorCtor{
	NavigatorPlus:     func(g *grid.Grid) navigator.Navigator { return navigator.NewPlus(g) },
	NavigatorAsterisk: func(g *grid.Grid) navigator.Navigator { return navigator.NewAsterisk(g) },
}

var algorithms = map[string]algorithmCtor{
	AlgorithmBFS:        func(nav navigator.Navigator, _ heuristic.Func) *search.Search { return search.NewBFS(nav) },
	AlgorithmDFS:        func(nav navigator.Navigator, _ heuristic.Func) *search.Search { return search.NewDFS(nav) },
	AlgorithmDijkstra:   func(nav navigator.Navigator, _ heuristic.Func) *search.Search { return search.NewDijkstra(nav) },
	AlgorithmBestFirst:  search.NewBestFirst,
	AlgorithmAStar:      search.NewAStar,
	AlgorithmBiBFS:      func(nav navigator.Navigator, _ heuristic.Func) *search.Search { return search.NewBiBFS(nav) },
	AlgorithmBiDijkstra: func(nav navigator.Navigator, _ heuristic.Func) *search.Search { return search.NewBiDijkstra(nav) },
	AlgorithmBiAStar:    search.NewBiAStar,
}

var heuristics = map[string]heuristic.Func{
	HeuristicManhattan: heuristic.Manhattan,
	HeuristicEuclidean: heuristic.Euclidean,
	HeuristicChebyshev: heuristic.Chebyshev,
	HeuristicOctile:    heuristic.Octile,
	HeuristicNull:      heuristic.Null,
}

var generators = map[string]generatorCtor{
	GeneratorMaze:      maze(terrain.SkewNone),
	GeneratorMazeVSkew: maze(terrain.SkewVertical),
	GeneratorMazeHSkew: maze(terrain.SkewHorizontal),
	GeneratorRandom: func(width, height int, opts ...terrain.Option) (terrain.Generator, error) {
		return terrain.NewRandom(width, height, opts...)
	},
}

// bidirectional pairs each unidirectional algorithm with its twin.
var bidirectional = map[string]string{
	AlgorithmBFS:      AlgorithmBiBFS,
	AlgorithmDijkstra: AlgorithmBiDijkstra,
	AlgorithmAStar:    AlgorithmBiAStar,
}

func maze(skew terrain.Skew) generatorCtor {
	return func(width, height int, opts ...terrain.Option) (terrain.Generator, error) {
		return terrain.NewMaze(width, height, skew, opts...)
	}
}

// normalizeKey lower-cases and trims a registry key.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Navigators lists the navigator keys in sorted order.
func Navigators() []string { return sortedKeys(navigators) }

// Algorithms lists the algorithm keys in sorted order.
func Algorithms() []string { return sortedKeys(algorithms) }

// Heuristics lists the heuristic keys in sorted order.
func Heuristics() []string { return sortedKeys(heuristics) }

// Generators lists the terrain generator keys in sorted order.
func Generators() []string { return sortedKeys(generators) }

// IsBidirectional reports whether key names a bidirectional algorithm.
func IsBidirectional(key string) bool {
	switch normalizeKey(key) {
	case AlgorithmBiBFS, AlgorithmBiDijkstra, AlgorithmBiAStar:
		return true
	}

	return false
}

// Bidirectional returns the bidirectional twin of an algorithm key. A key
// that is already bidirectional is returned normalized.
func Bidirectional(key string) (string, error) {
	k := normalizeKey(key)
	if _, ok := algorithms[k]; !ok {
		return "", configErrorf(MethodBidirectional, ErrUnknownAlgorithm, key)
	}
	if IsBidirectional(k) {
		return k, nil
	}
	twin, ok := bidirectional[k]
	if !ok {
		return "", configErrorf(MethodBidirectional, ErrNoBidirectional, key)
	}

	return twin, nil
}
