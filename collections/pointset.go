package collections

import "github.com/katalvlaran/gridpath/grid"

// PointSet is a fixed-size set of grid points backed by a dense slice.
// Points must lie within the width×height rectangle it was created with.
type PointSet struct {
	width, height int
	bits          []bool
	size          int
}

// NewPointSet allocates an empty set for a width×height area.
func NewPointSet(width, height int) *PointSet {
	return &PointSet{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

func (s *PointSet) index(p grid.Point) int {
	return p.Y*s.width + p.X
}

// Add inserts p. Adding a present point is a no-op.
func (s *PointSet) Add(p grid.Point) {
	i := s.index(p)
	if !s.bits[i] {
		s.bits[i] = true
		s.size++
	}
}

// Remove deletes p. Removing an absent point is a no-op.
func (s *PointSet) Remove(p grid.Point) {
	i := s.index(p)
	if s.bits[i] {
		s.bits[i] = false
		s.size--
	}
}

// Has reports whether p is in the set.
func (s *PointSet) Has(p grid.Point) bool {
	return s.bits[s.index(p)]
}

// Clear removes every point.
func (s *PointSet) Clear() {
	for i := range s.bits {
		s.bits[i] = false
	}
	s.size = 0
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int { return s.size }

// Points returns the members in row-major order.
func (s *PointSet) Points() []grid.Point {
	out := make([]grid.Point, 0, s.size)
	for i, ok := range s.bits {
		if ok {
			out = append(out, grid.Point{X: i % s.width, Y: i / s.width})
		}
	}

	return out
}
