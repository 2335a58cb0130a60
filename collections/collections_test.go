package collections_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/collections"
	"github.com/katalvlaran/gridpath/grid"
)

// PointSetSuite exercises the dense point set.
type PointSetSuite struct {
	suite.Suite
	set *collections.PointSet
}

func (s *PointSetSuite) SetupTest() {
	s.set = collections.NewPointSet(4, 3)
}

// TestAddHasRemove checks membership bookkeeping and idempotence.
func (s *PointSetSuite) TestAddHasRemove() {
	p := grid.Point{X: 3, Y: 2}
	s.False(s.set.Has(p))

	s.set.Add(p)
	s.set.Add(p)
	s.True(s.set.Has(p))
	s.Equal(1, s.set.Len())

	s.set.Remove(p)
	s.set.Remove(p)
	s.False(s.set.Has(p))
	s.Equal(0, s.set.Len())
}

// TestClear empties the set.
func (s *PointSetSuite) TestClear() {
	s.set.Add(grid.Point{X: 0, Y: 0})
	s.set.Add(grid.Point{X: 1, Y: 2})
	s.set.Clear()
	s.Equal(0, s.set.Len())
	s.False(s.set.Has(grid.Point{X: 1, Y: 2}))
}

// TestPoints lists members in row-major order.
func (s *PointSetSuite) TestPoints() {
	s.set.Add(grid.Point{X: 2, Y: 1})
	s.set.Add(grid.Point{X: 0, Y: 2})
	s.set.Add(grid.Point{X: 3, Y: 0})
	s.Equal([]grid.Point{{X: 3, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}}, s.set.Points())
}

func TestPointSetSuite(t *testing.T) {
	suite.Run(t, new(PointSetSuite))
}

func TestPointTable(t *testing.T) {
	tbl := collections.NewPointTable[string](3, 3)
	a, b := grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}

	_, ok := tbl.Get(a)
	assert.False(t, ok)

	tbl.Set(a, "a")
	tbl.Set(b, "b")
	tbl.Set(b, "b2")
	v, ok := tbl.Get(b)
	require.True(t, ok)
	assert.Equal(t, "b2", v)
	assert.Equal(t, 2, tbl.Len())

	vals := tbl.Values()
	sort.Strings(vals)
	assert.Equal(t, []string{"a", "b2"}, vals)

	clone := tbl.Clone()
	tbl.Remove(a)
	assert.False(t, tbl.Has(a))
	assert.True(t, clone.Has(a), "clone must be independent")
	assert.Equal(t, 2, clone.Len())

	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Values())
}

func TestHeap_Basics(t *testing.T) {
	h := collections.NewHeap(func(a, b int) bool { return a < b })
	assert.True(t, h.IsEmpty())
	assert.Panics(t, func() { h.Pop() })
	assert.Panics(t, func() { h.Peek() })

	for _, v := range []int{5, 1, 4, 1, 3} {
		h.Push(v)
	}
	assert.Equal(t, 5, h.Size())
	assert.Equal(t, 1, h.Peek())

	var got []int
	for !h.IsEmpty() {
		got = append(got, h.Pop())
	}
	assert.Equal(t, []int{1, 1, 3, 4, 5}, got)
}

func TestHeap_NilComparatorPanics(t *testing.T) {
	assert.Panics(t, func() { collections.NewHeap[int](nil) })
}

// TestHeap_RandomizedOrder is a property test: for any push sequence the pop
// sequence is monotone in the comparator's direction.
func TestHeap_RandomizedOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		minHeap := collections.NewHeap(func(a, b float64) bool { return a < b })
		maxHeap := collections.NewHeap(func(a, b float64) bool { return a > b })
		n := 1 + r.Intn(200)
		for i := 0; i < n; i++ {
			v := r.Float64() * 100
			minHeap.Push(v)
			maxHeap.Push(v)
			// interleave pops to exercise sift-down on partially built heaps
			if r.Intn(5) == 0 {
				top := minHeap.Peek()
				require.Equal(t, top, minHeap.Pop())
				minHeap.Push(top)
			}
		}

		prev := minHeap.Pop()
		for !minHeap.IsEmpty() {
			cur := minHeap.Pop()
			require.LessOrEqual(t, prev, cur, "round %d", round)
			prev = cur
		}
		prev = maxHeap.Pop()
		for !maxHeap.IsEmpty() {
			cur := maxHeap.Pop()
			require.GreaterOrEqual(t, prev, cur, "round %d", round)
			prev = cur
		}
	}
}
