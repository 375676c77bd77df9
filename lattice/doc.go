// Package lattice models the random 2-D site lattice used by percolation
// experiments: a rectangular grid of cells, each either occupied or vacant,
// stored flat in row-major order (index = row*Length + col).
//
// What:
//
//   - Params is the validated configuration of one lattice: Length (columns),
//     Height (rows) and VacancyPercentage, the probability that a cell is empty.
//   - Generate samples a Grid from a caller-owned random Source, drawing exactly
//     one value in [0,1) per cell in index order. A cell is occupied iff its
//     draw is >= VacancyPercentage, so the same seed always yields the same grid.
//   - Neighbors returns the 4-connected neighbours of a cell (up, left, down,
//     right), dropping any that would cross the grid boundary.
//   - Grid exposes coordinate helpers (Index, Coordinate, InBounds) and the
//     left/right edge columns used by percolation checks.
//
// Invalid parameters are rejected with ErrInvalidParameter, never clamped.
//
// Complexity:
//
//   - Generate:  O(L×H) time and memory.
//   - Neighbors: O(1).
package lattice
