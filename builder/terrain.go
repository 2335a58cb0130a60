// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// terrain.go - fluent assembly of a terrain.Generator.
//
// Contract:
//   • Setters record values only; Build validates and constructs.
//   • Rand takes precedence over Seed, as in terrain.Options.
//   • Errors from the terrain package are wrapped and also match ErrConfiguration.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/terrain"
)

// TerrainBuilder selects a terrain generator by key and configures it.
type TerrainBuilder struct {
	width, height int
	generator     string
	ignore        []grid.Point
	tile          *grid.TileData
	seed          int64
	rng           *rand.Rand
}

// NewTerrain starts a builder for width×height grids using DefaultGenerator.
func NewTerrain(width, height int) *TerrainBuilder {
	return &TerrainBuilder{width: width, height: height, generator: DefaultGenerator}
}

// Generator sets the generator key.
func (b *TerrainBuilder) Generator(key string) *TerrainBuilder {
	b.generator = key
	return b
}

// Ignore adds points the generator must never draw.
func (b *TerrainBuilder) Ignore(points ...grid.Point) *TerrainBuilder {
	b.ignore = append(b.ignore, points...)
	return b
}

// Tile sets the drawn payload; the default is grid.SolidTileData.
func (b *TerrainBuilder) Tile(data grid.TileData) *TerrainBuilder {
	b.tile = &data
	return b
}

// Seed sets the RNG seed; 0 selects the terrain package default.
func (b *TerrainBuilder) Seed(seed int64) *TerrainBuilder {
	b.seed = seed
	return b
}

// Rand injects an RNG shared with the caller.
func (b *TerrainBuilder) Rand(rng *rand.Rand) *TerrainBuilder {
	b.rng = rng
	return b
}

// Build constructs the generator. Errors match ErrConfiguration and one of
// ErrUnknownGenerator or grid.ErrBadSize.
func (b *TerrainBuilder) Build() (terrain.Generator, error) {
	newGen, ok := generators[normalizeKey(b.generator)]
	if !ok {
		return nil, configErrorf(MethodTerrain, ErrUnknownGenerator, b.generator)
	}

	opts := []terrain.Option{terrain.WithSeed(b.seed), terrain.WithIgnore(b.ignore...)}
	if b.tile != nil {
		opts = append(opts, terrain.WithTile(*b.tile))
	}
	if b.rng != nil {
		opts = append(opts, terrain.WithRand(b.rng))
	}

	gen, err := newGen(b.width, b.height, opts...)
	if err != nil {
		return nil, configErrorf(MethodTerrain, err, b.generator)
	}

	return gen, nil
}
