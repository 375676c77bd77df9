// Package percolation decides whether a lattice percolates: whether occupied
// cells form a 4-connected path from the left edge (column 0) to the right
// edge (column Length-1).
//
// Build unions every pair of adjacent occupied cells into a unionfind
// structure; Percolates then groups the left-edge roots and checks whether any
// right-edge cell shares one. Evaluate combines both and only seeds the
// grouping with occupied left cells, which matters for single-column grids
// where each left cell is also a right cell.
//
// Complexity: Build O(L×H·log(L×H)) amortized, Percolates O(H·log(L×H)) after Build.
package percolation
