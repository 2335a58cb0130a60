package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/navigator"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
)

// TestPathfinder_Defaults builds plus / a* / manhattan.
func TestPathfinder_Defaults(t *testing.T) {
	pf, err := builder.NewPathfinder(grid.MustNew(5, 5)).Build()
	require.NoError(t, err)
	assert.Equal(t, search.AlgorithmAStar, pf.AlgorithmName())
	assert.Equal(t, navigator.TypePlus, pf.Navigator().Type())

	path := pf.FindPath(grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	assert.Len(t, path, 8)
}

// TestPathfinder_EveryKey walks the full registry cross product.
func TestPathfinder_EveryKey(t *testing.T) {
	g := grid.MustNew(6, 6)
	for _, nav := range builder.Navigators() {
		for _, algo := range builder.Algorithms() {
			for _, heur := range builder.Heuristics() {
				pf, err := builder.NewPathfinder(g).Navigator(nav).Algorithm(algo).Heuristic(heur).Build()
				require.NoError(t, err, "%s/%s/%s", nav, algo, heur)
				assert.Equal(t, algo, pf.AlgorithmName())
				assert.Equal(t, nav, pf.Navigator().Type())
				assert.Same(t, g, pf.Navigator().Grid())
				assert.NotEmpty(t, pf.FindPath(grid.Point{}, grid.Point{X: 5, Y: 5}), "%s/%s/%s", nav, algo, heur)
			}
		}
	}
}

// TestPathfinder_CaseInsensitive accepts mixed case and surrounding spaces.
func TestPathfinder_CaseInsensitive(t *testing.T) {
	pf, err := builder.NewPathfinder(grid.MustNew(3, 3)).
		Navigator(" Asterisk ").
		Algorithm("BI-A*").
		Heuristic("OCTILE").
		Build()
	require.NoError(t, err)
	assert.Equal(t, search.AlgorithmBiAStar, pf.AlgorithmName())
	assert.Equal(t, navigator.TypeAsterisk, pf.Navigator().Type())
}

// TestPathfinder_Errors checks that each bad key maps to its sentinel and to
// ErrConfiguration.
func TestPathfinder_Errors(t *testing.T) {
	g := grid.MustNew(3, 3)
	cases := []struct {
		name  string
		build *builder.PathfinderBuilder
		want  error
	}{
		{"nil grid", builder.NewPathfinder(nil), builder.ErrNilGrid},
		{"navigator", builder.NewPathfinder(g).Navigator("hex"), builder.ErrUnknownNavigator},
		{"algorithm", builder.NewPathfinder(g).Algorithm("jps"), builder.ErrUnknownAlgorithm},
		{"heuristic", builder.NewPathfinder(g).Heuristic("zigzag"), builder.ErrUnknownHeuristic},
		{"empty algorithm", builder.NewPathfinder(g).Algorithm(""), builder.ErrUnknownAlgorithm},
		{"navigator first", builder.NewPathfinder(g).Navigator("x").Algorithm("y"), builder.ErrUnknownNavigator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pf, err := tc.build.Build()
			require.Error(t, err)
			assert.Nil(t, pf)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, errors.Is(err, builder.ErrConfiguration), "got %v", err)
			assert.Contains(t, err.Error(), builder.MethodPathfinder)
		})
	}
}

// TestPathfinder_BuildIsRepeatable returns independent instances.
func TestPathfinder_BuildIsRepeatable(t *testing.T) {
	b := builder.NewPathfinder(grid.MustNew(4, 4)).Algorithm("bfs")
	a, err := b.Build()
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)

	a.FindPath(grid.Point{}, grid.Point{X: 3, Y: 3})
	assert.Positive(t, a.RecentNodes())
	assert.Zero(t, c.RecentNodes())
}

func TestBidirectional(t *testing.T) {
	for in, want := range map[string]string{
		"bfs":      "bi-bfs",
		"Dijkstra": "bi-dijkstra",
		"a*":       "bi-a*",
		"BI-BFS":   "bi-bfs",
	} {
		got, err := builder.Bidirectional(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.True(t, builder.IsBidirectional(got))
	}

	_, err := builder.Bidirectional("dfs")
	assert.True(t, errors.Is(err, builder.ErrNoBidirectional))
	assert.True(t, errors.Is(err, builder.ErrConfiguration))

	_, err = builder.Bidirectional("nope")
	assert.True(t, errors.Is(err, builder.ErrUnknownAlgorithm))

	assert.False(t, builder.IsBidirectional("best-first"))
	assert.False(t, builder.IsBidirectional("unknown"))
}

func TestRegistries(t *testing.T) {
	assert.Equal(t, []string{"asterisk", "plus"}, builder.Navigators())
	assert.Equal(t, []string{"a*", "best-first", "bfs", "bi-a*", "bi-bfs", "bi-dijkstra", "dfs", "dijkstra"}, builder.Algorithms())
	assert.Equal(t, []string{"chebyshev", "euclidean", "manhattan", "null", "octile"}, builder.Heuristics())
	assert.Equal(t, []string{"maze", "maze-hskew", "maze-vskew", "random"}, builder.Generators())
}

// TestTerrain_Keys maps generator keys to concrete types and skews.
func TestTerrain_Keys(t *testing.T) {
	cases := map[string]terrain.Skew{
		"maze":       terrain.SkewNone,
		"MAZE-VSKEW": terrain.SkewVertical,
		"maze-hskew": terrain.SkewHorizontal,
	}
	for key, skew := range cases {
		gen, err := builder.NewTerrain(11, 11).Generator(key).Build()
		require.NoError(t, err, key)
		m, ok := gen.(*terrain.Maze)
		require.True(t, ok, key)
		assert.Equal(t, skew, m.Skew())
	}

	gen, err := builder.NewTerrain(11, 11).Generator("random").Build()
	require.NoError(t, err)
	assert.IsType(t, &terrain.Random{}, gen)

	gen, err = builder.NewTerrain(11, 11).Build()
	require.NoError(t, err)
	assert.IsType(t, &terrain.Maze{}, gen)
}

// TestTerrain_Options forwards ignore, tile and seed.
func TestTerrain_Options(t *testing.T) {
	start, goal := grid.Point{X: 1, Y: 1}, grid.Point{X: 19, Y: 19}
	weighted := grid.TileData{PathCost: 4}

	build := func() *grid.Grid {
		gen, err := builder.NewTerrain(21, 21).Generator("random").Ignore(start, goal).Tile(weighted).Seed(21).Build()
		require.NoError(t, err)
		return gen.Generate()
	}
	a, b := build(), build()
	assert.Equal(t, a.String(), b.String())
	assert.True(t, a.IsEmpty(start))
	assert.True(t, a.IsEmpty(goal))

	drawn := 0
	for _, tile := range a.Tiles() {
		assert.False(t, tile.Data.IsSolid)
		if tile.Data == weighted {
			drawn++
		}
	}
	assert.Positive(t, drawn)
}

// TestTerrain_Rand uses the injected source instead of the seed.
func TestTerrain_Rand(t *testing.T) {
	a, err := builder.NewTerrain(15, 15).Seed(3).Rand(rand.New(rand.NewSource(77))).Build()
	require.NoError(t, err)
	b, err := builder.NewTerrain(15, 15).Seed(77).Build()
	require.NoError(t, err)
	assert.Equal(t, a.Generate().String(), b.Generate().String())
}

func TestTerrain_Errors(t *testing.T) {
	_, err := builder.NewTerrain(10, 10).Generator("caves").Build()
	assert.True(t, errors.Is(err, builder.ErrUnknownGenerator))
	assert.True(t, errors.Is(err, builder.ErrConfiguration))

	_, err = builder.NewTerrain(0, 10).Build()
	assert.True(t, errors.Is(err, grid.ErrBadSize), "got %v", err)
	assert.True(t, errors.Is(err, builder.ErrConfiguration))
	assert.Contains(t, err.Error(), builder.MethodTerrain)
}

// TestTerrainThenSearch protects the endpoints of a maze and routes between them.
func TestTerrainThenSearch(t *testing.T) {
	start, goal := grid.Point{X: 1, Y: 1}, grid.Point{X: 29, Y: 19}
	for seed := int64(1); seed <= 10; seed++ {
		gen, err := builder.NewTerrain(31, 21).Generator("maze").Ignore(start, goal).Seed(seed).Build()
		require.NoError(t, err)
		g := gen.Generate()

		bfs, err := builder.NewPathfinder(g).Algorithm("bfs").Build()
		require.NoError(t, err)
		astar, err := builder.NewPathfinder(g).Build()
		require.NoError(t, err)

		want := bfs.FindPath(start, goal)
		require.NotEmpty(t, want, "seed %d\n%s", seed, g)
		assert.Len(t, astar.FindPath(start, goal), len(want))
	}
}
