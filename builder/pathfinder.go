// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// pathfinder.go - fluent assembly of a search.Pathfinder.
//
// Contract:
//   • Setters record keys only; every check happens in Build.
//   • Build is repeatable: each call returns a fresh pathfinder with its own trace.
//   • The first failing check wins, in the order grid, navigator, algorithm, heuristic.

package builder

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// PathfinderBuilder selects a navigator, an algorithm and a heuristic by key.
type PathfinderBuilder struct {
	g         *grid.Grid
	navigator string
	algorithm string
	heuristic string
}

// NewPathfinder starts a builder over g with the default keys.
func NewPathfinder(g *grid.Grid) *PathfinderBuilder {
	return &PathfinderBuilder{
		g:         g,
		navigator: DefaultNavigator,
		algorithm: DefaultAlgorithm,
		heuristic: DefaultHeuristic,
	}
}

// Navigator sets the navigator key.
func (b *PathfinderBuilder) Navigator(key string) *PathfinderBuilder {
	b.navigator = key
	return b
}

// Algorithm sets the algorithm key.
func (b *PathfinderBuilder) Algorithm(key string) *PathfinderBuilder {
	b.algorithm = key
	return b
}

// Heuristic sets the heuristic key. It is validated even for algorithms that
// ignore it.
func (b *PathfinderBuilder) Heuristic(key string) *PathfinderBuilder {
	b.heuristic = key
	return b
}

// Build resolves the keys and constructs the pathfinder.
// Errors match ErrConfiguration and one of ErrNilGrid, ErrUnknownNavigator,
// ErrUnknownAlgorithm or ErrUnknownHeuristic.
func (b *PathfinderBuilder) Build() (search.Pathfinder, error) {
	if b.g == nil {
		return nil, configErrorf(MethodPathfinder, ErrNilGrid, "")
	}
	newNav, ok := navigators[normalizeKey(b.navigator)]
	if !ok {
		return nil, configErrorf(MethodPathfinder, ErrUnknownNavigator, b.navigator)
	}
	newAlgo, ok := algorithms[normalizeKey(b.algorithm)]
	if !ok {
		return nil, configErrorf(MethodPathfinder, ErrUnknownAlgorithm, b.algorithm)
	}
	h, ok := heuristics[normalizeKey(b.heuristic)]
	if !ok {
		return nil, configErrorf(MethodPathfinder, ErrUnknownHeuristic, b.heuristic)
	}

	return newAlgo(newNav(b.g), h), nil
}
