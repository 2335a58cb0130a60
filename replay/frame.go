package replay

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Runes used for trace overlays.
const (
	RuneExpanded   = 'o'
	RuneDiscovered = '+'
	RunePath       = '*'
)

// Cell is one rendered tile.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Styles colors each kind of cell.
type Styles struct {
	Empty              tcell.Style
	Wall               tcell.Style
	Weighted           tcell.Style
	Expanded           tcell.Style
	Discovered         tcell.Style
	BackwardExpanded   tcell.Style
	BackwardDiscovered tcell.Style
	Path               tcell.Style
	Status             tcell.Style
}

// DefaultStyles returns the palette used when WithStyles is not given.
func DefaultStyles() Styles {
	return Styles{
		Empty:              tcell.StyleDefault.Foreground(tcell.ColorGray),
		Wall:               tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
		Weighted:           tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Expanded:           tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Discovered:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
		BackwardExpanded:   tcell.StyleDefault.Foreground(tcell.ColorPurple),
		BackwardDiscovered: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		Path:               tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Status:             tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Frame renders g with the first upto generations of gens and the path on
// top. Expanded nodes cover discovered ones. upto is clamped to [0, len(gens)].
// The result has g.Width()×g.Height() cells in row-major order.
func Frame(g *grid.Grid, gens []search.Generation, upto int, path []grid.Tile, styles Styles) []Cell {
	if upto < 0 {
		upto = 0
	}
	if upto > len(gens) {
		upto = len(gens)
	}

	cells := make([]Cell, g.Width()*g.Height())
	for i, tile := range g.Tiles() {
		cells[i] = baseCell(tile.Data, styles)
	}

	for _, gen := range gens[:upto] {
		style := styles.Discovered
		if gen.Backward {
			style = styles.BackwardDiscovered
		}
		for _, child := range gen.Children {
			cells[g.Index(child.Point)] = Cell{Rune: RuneDiscovered, Style: style}
		}
	}
	for _, gen := range gens[:upto] {
		style := styles.Expanded
		if gen.Backward {
			style = styles.BackwardExpanded
		}
		cells[g.Index(gen.Tile.Point)] = Cell{Rune: RuneExpanded, Style: style}
	}

	for _, tile := range path {
		cells[g.Index(tile.Point)] = Cell{Rune: RunePath, Style: styles.Path}
	}

	return cells
}

func baseCell(d grid.TileData, styles Styles) Cell {
	r := grid.RuneFor(d)
	switch {
	case d.IsSolid:
		return Cell{Rune: r, Style: styles.Wall}
	case r == grid.RuneEmpty:
		return Cell{Rune: r, Style: styles.Empty}
	}

	return Cell{Rune: r, Style: styles.Weighted}
}

// Text renders the full trace and the path as ASCII, one row per line.
func Text(g *grid.Grid, path []grid.Tile, gens []search.Generation) string {
	cells := Frame(g, gens, len(gens), path, Styles{})

	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			sb.WriteRune(cells[y*g.Width()+x].Rune)
		}
	}

	return sb.String()
}
