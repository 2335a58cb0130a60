// Package collections provides the per-search data structures used on the hot
// path of every expansion.
//
//   - PointSet: dense boolean matrix indexed by grid coordinate.
//   - PointTable[V]: dense matrix of optional values indexed by grid coordinate.
//   - Heap[E]: binary array heap ordered by a caller-supplied comparator.
//
// PointSet and PointTable trade W×H memory for O(1) access without hashing or
// serializing coordinates. Their lifetime is one search call.
//
// Heap has no decrease-key. Algorithms that relax distances push duplicate
// entries and discard stale ones when popped (lazy deletion).
//
// Complexity:
//
//   - PointSet / PointTable: O(1) Add/Has/Remove/Get, O(W×H) Clear/Values/Clone.
//   - Heap: O(log n) Push/Pop, O(1) Peek/Size.
package collections
