package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/unionfind"
)

// ErrInvalidParameter is lattice.ErrInvalidParameter, re-exported so callers of
// this package can match it without importing lattice.
var ErrInvalidParameter = lattice.ErrInvalidParameter

// Build returns a union-find over g's cells in which every two adjacent
// occupied cells are joined.
// Complexity: O(L×H·log(L×H)) amortized time, O(L×H) memory.
func Build(g *lattice.Grid) (*unionfind.UnionFind, error) {
	if g == nil {
		return nil, fmt.Errorf("percolation: Build: nil grid: %w", ErrInvalidParameter)
	}
	uf, err := unionfind.New(g.Size())
	if err != nil {
		return nil, fmt.Errorf("percolation: Build %dx%d: %w", g.Length(), g.Height(), err)
	}
	for i := 0; i < g.Size(); i++ {
		if !g.Occupied(i) {
			continue
		}
		for _, j := range g.Neighbors(i) {
			if !g.Occupied(j) {
				continue
			}
			if err := uf.Union(i, j); err != nil {
				return nil, fmt.Errorf("percolation: Build %dx%d: cell %d neighbour %d: %w",
					g.Length(), g.Height(), i, j, err)
			}
		}
	}

	return uf, nil
}

// Percolates reports whether any column-0 cell is connected to any
// column-(length-1) cell in uf, which must cover a length×height grid.
// Complexity: O(H·log(L×H)) amortized time, O(H) memory.
func Percolates(uf *unionfind.UnionFind, length, height int) (bool, error) {
	return percolates(uf, length, height, nil)
}

// Evaluate builds g's union-find and reports whether g percolates through
// occupied cells.
// Complexity: O(L×H·log(L×H)) amortized time, O(L×H) memory.
func Evaluate(g *lattice.Grid) (bool, error) {
	uf, err := Build(g)
	if err != nil {
		return false, err
	}

	return percolates(uf, g.Length(), g.Height(), g.Occupied)
}

// percolates collects the roots of the left column (restricted to cells
// accepted by keep, when non-nil) and probes them with the right column.
func percolates(uf *unionfind.UnionFind, length, height int, keep func(int) bool) (bool, error) {
	if uf == nil || length <= 0 || height <= 0 || length > math.MaxInt/height {
		return false, fmt.Errorf("percolation: Percolates %dx%d: %w", length, height, ErrInvalidParameter)
	}
	if uf.Len() != length*height {
		return false, fmt.Errorf("percolation: Percolates %dx%d: union-find has %d elements: %w",
			length, height, uf.Len(), ErrInvalidParameter)
	}

	left := make(map[int]struct{}, height)
	for _, i := range lattice.EdgeColumn(0, length, height) {
		if keep != nil && !keep(i) {
			continue
		}
		r, err := uf.Root(i)
		if err != nil {
			return false, fmt.Errorf("percolation: Percolates %dx%d: left cell %d: %w", length, height, i, err)
		}
		left[r] = struct{}{}
	}
	if len(left) == 0 {
		return false, nil
	}
	for _, j := range lattice.EdgeColumn(length-1, length, height) {
		r, err := uf.Root(j)
		if err != nil {
			return false, fmt.Errorf("percolation: Percolates %dx%d: right cell %d: %w", length, height, j, err)
		}
		if _, ok := left[r]; ok {
			return true, nil
		}
	}

	return false, nil
}
