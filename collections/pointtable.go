package collections

import "github.com/katalvlaran/gridpath/grid"

// PointTable maps grid points to values of type V using a dense slice.
type PointTable[V any] struct {
	width, height int
	values        []V
	present       []bool
	size          int
}

// NewPointTable allocates an empty table for a width×height area.
func NewPointTable[V any](width, height int) *PointTable[V] {
	return &PointTable[V]{
		width:   width,
		height:  height,
		values:  make([]V, width*height),
		present: make([]bool, width*height),
	}
}

func (t *PointTable[V]) index(p grid.Point) int {
	return p.Y*t.width + p.X
}

// Set stores v at p, replacing any previous value.
func (t *PointTable[V]) Set(p grid.Point, v V) {
	i := t.index(p)
	if !t.present[i] {
		t.present[i] = true
		t.size++
	}
	t.values[i] = v
}

// Get returns the value at p and whether one is present.
func (t *PointTable[V]) Get(p grid.Point) (V, bool) {
	i := t.index(p)
	return t.values[i], t.present[i]
}

// Has reports whether p holds a value.
func (t *PointTable[V]) Has(p grid.Point) bool {
	return t.present[t.index(p)]
}

// Remove deletes the value at p.
func (t *PointTable[V]) Remove(p grid.Point) {
	i := t.index(p)
	if t.present[i] {
		var zero V
		t.values[i] = zero
		t.present[i] = false
		t.size--
	}
}

// Clear removes every value.
func (t *PointTable[V]) Clear() {
	var zero V
	for i := range t.values {
		t.values[i] = zero
		t.present[i] = false
	}
	t.size = 0
}

// Len returns the number of stored values.
func (t *PointTable[V]) Len() int { return t.size }

// Values returns the stored values. Order is unspecified.
func (t *PointTable[V]) Values() []V {
	out := make([]V, 0, t.size)
	for i, ok := range t.present {
		if ok {
			out = append(out, t.values[i])
		}
	}

	return out
}

// Clone returns an independent copy of the table. Values are copied by
// assignment, so pointer-typed V still share their targets.
func (t *PointTable[V]) Clone() *PointTable[V] {
	c := &PointTable[V]{
		width:   t.width,
		height:  t.height,
		values:  make([]V, len(t.values)),
		present: make([]bool, len(t.present)),
		size:    t.size,
	}
	copy(c.values, t.values)
	copy(c.present, t.present)

	return c
}
