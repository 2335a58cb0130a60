package grid

import (
	"fmt"
	"strings"
)

// ASCII runes understood by Parse and produced by String.
const (
	RuneEmpty    = '.'
	RuneSolid    = '#'
	RuneWeighted = '~' // String only: weighted tile whose cost is not a digit 2..9
)

// Parse builds a grid from rows of runes, one rune per tile:
// '.' empty, '#' solid, '2'..'9' walkable with that path cost.
// Returns ErrBadSize for no rows or empty rows, ErrNonRectangular for jagged
// input, and ErrBadCell for unknown runes.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadSize)
	}
	w := len([]rune(rows[0]))
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, r := range runes {
			data, ok := dataForRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
			g.tiles[g.index(x, y)].Data = data
		}
	}

	return g, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}

	return g
}

func dataForRune(r rune) (TileData, bool) {
	switch {
	case r == RuneEmpty:
		return EmptyTileData, true
	case r == RuneSolid:
		return SolidTileData, true
	case r >= '2' && r <= '9':
		return TileData{PathCost: float64(r - '0')}, true
	}

	return TileData{}, false
}

// RuneFor returns the ASCII rune for a tile payload.
func RuneFor(d TileData) rune {
	switch {
	case d.IsSolid:
		return RuneSolid
	case d.PathCost == 1:
		return RuneEmpty
	case d.PathCost >= 2 && d.PathCost <= 9 && d.PathCost == float64(int(d.PathCost)):
		return rune('0' + int(d.PathCost))
	}

	return RuneWeighted
}

// String renders the grid one row per line using RuneFor.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(RuneFor(g.tiles[g.index(x, y)].Data))
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
