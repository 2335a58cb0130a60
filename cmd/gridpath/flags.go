package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// parsePoint reads "x,y".
func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}

	return grid.Point{X: x, Y: y}, nil
}

// pointOrDefault parses s, falling back to def when s is empty, and checks
// the result against g.
func pointOrDefault(s string, def grid.Point, g *grid.Grid) (grid.Point, error) {
	p := def
	if s != "" {
		var err error
		if p, err = parsePoint(s); err != nil {
			return grid.Point{}, err
		}
	}
	if !g.InBounds(p) {
		return grid.Point{}, fmt.Errorf("%v outside %dx%d grid", p, g.Width(), g.Height())
	}

	return p, nil
}

// parseDelay accepts a Go duration ("15ms") or a bare millisecond count.
func parseDelay(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		s = strconv.Itoa(ms) + "ms"
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("-delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("-delay: %v is negative", d)
	}

	return d, nil
}

// splitRows splits a map file into rows, dropping trailing blank lines and
// carriage returns.
func splitRows(data string) []string {
	rows := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return rows
}
