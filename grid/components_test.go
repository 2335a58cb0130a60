package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents_Islands(t *testing.T) {
	g := MustParse(
		"..#..",
		"..#..",
		"#####",
		"3....",
	)
	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1, 5, 6}, comps[0])
	assert.ElementsMatch(t, []int{3, 4, 8, 9}, comps[1])
	assert.ElementsMatch(t, []int{15, 16, 17, 18, 19}, comps[2])
}

func TestComponents_NoDiagonals(t *testing.T) {
	g := MustParse(
		".#",
		"#.",
	)
	assert.Len(t, g.Components(), 2)
	assert.False(t, g.Connected(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}))
}

func TestComponents_AllSolid(t *testing.T) {
	g := MustNew(3, 2)
	g.Fill(SolidTileData)
	assert.Empty(t, g.Components())
}

func TestConnected(t *testing.T) {
	g := MustParse(
		"...#.",
		".#.#.",
		".#...",
	)
	assert.True(t, g.Connected(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}))
	assert.True(t, g.Connected(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}))
	assert.False(t, g.Connected(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}), "solid endpoint")
	assert.Panics(t, func() { g.Connected(Point{X: -1, Y: 0}, Point{}) })
}
