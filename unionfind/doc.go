// Package unionfind provides a flat, index-based disjoint-set (union-find)
// structure over the integers 0..n-1.
//
// What:
//
//   - UnionFind keeps one parent link per element in a contiguous []int.
//   - Root follows parent links iteratively and halves the path as it goes
//     (every visited element is re-pointed at its grandparent).
//   - Union attaches the root of p under the root of q. There is no rank or
//     size balancing; path halving alone keeps chains short in practice.
//   - Connected reports whether two elements share a root.
//
// Why:
//
//   - Percolation and other grid-connectivity problems reveal occupancy cell by
//     cell; union-find answers "are these two cells joined?" in near-constant
//     amortized time without materialising a graph.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Root:      amortized O(log n) without balancing, O(1) extra memory.
//   - Union:     two Root calls.
//   - Connected: two Root calls.
//
// Errors:
//
//   - ErrInvalidSize: New was asked for a negative number of elements.
//   - ErrOutOfBounds: an index outside [0, n) was passed in. The concrete error
//     is an *IndexError carrying the offending index and the structure size.
//
// A UnionFind is not safe for concurrent use: Root mutates parent links.
package unionfind
