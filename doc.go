// Package percolate estimates how likely a random 2-D lattice is to percolate:
// each cell is occupied with probability 1 - vacancy, and the lattice
// percolates when occupied cells link its left edge to its right edge.
//
// Under the hood, everything is organized in small subpackages:
//
//	unionfind/   — flat, index-based disjoint sets with path halving
//	lattice/     — validated Params, seeded Grid sampling, 4-neighbour adjacency
//	percolation/ — unions adjacent occupied cells and tests left↔right connectivity
//	montecarlo/  — repeated sampling, probability estimates and parameter sweeps
//	render/      — optional PNG/HTML output of grids and sweep curves
//	cmd/percolate — command-line front end
//
// Quick ASCII example (4×3, '#' occupied):
//
//	#...
//	###.
//	..##
//
// percolates: the occupied cells join column 0 to column 3.
//
//	go run github.com/katalvlaran/percolate/cmd/percolate -x 20 -y 20 -s 1 -v 0.4 -n 100
package percolate
