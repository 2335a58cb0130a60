// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// constants.go - registry keys and method tokens for error context.

package builder

import (
	"github.com/katalvlaran/gridpath/navigator"
	"github.com/katalvlaran/gridpath/search"
)

// Navigator keys.
const (
	NavigatorPlus     = navigator.TypePlus
	NavigatorAsterisk = navigator.TypeAsterisk
)

// Algorithm keys.
const (
	AlgorithmBFS        = search.AlgorithmBFS
	AlgorithmDFS        = search.AlgorithmDFS
	AlgorithmDijkstra   = search.AlgorithmDijkstra
	AlgorithmBestFirst  = search.AlgorithmBestFirst
	AlgorithmAStar      = search.AlgorithmAStar
	AlgorithmBiBFS      = search.AlgorithmBiBFS
	AlgorithmBiDijkstra = search.AlgorithmBiDijkstra
	AlgorithmBiAStar    = search.AlgorithmBiAStar
)

// Heuristic keys.
const (
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicChebyshev = "chebyshev"
	HeuristicOctile    = "octile"
	HeuristicNull      = "null"
)

// Terrain generator keys.
const (
	GeneratorMaze      = "maze"
	GeneratorMazeVSkew = "maze-vskew"
	GeneratorMazeHSkew = "maze-hskew"
	GeneratorRandom    = "random"
)

// Defaults applied by NewPathfinder and NewTerrain.
const (
	DefaultNavigator = NavigatorPlus
	DefaultAlgorithm = AlgorithmAStar
	DefaultHeuristic = HeuristicManhattan
	DefaultGenerator = GeneratorMaze
)

// Method tokens used as error prefixes.
const (
	MethodPathfinder    = "Pathfinder"
	MethodTerrain       = "Terrain"
	MethodBidirectional = "Bidirectional"
)
