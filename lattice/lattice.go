package lattice

import (
	"fmt"
	"math"
	"strings"
)

// neighborOffsets lists the 4-connected steps as (dx, dy): up, left, down, right.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// Generate samples a grid for p, drawing one rng.Float64() per cell in
// row-major order. A cell is occupied iff its draw is >= p.VacancyPercentage.
// Complexity: O(L×H) time and memory.
func Generate(p Params, rng Source) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilSource
	}
	cells := make([]bool, p.Size())
	for i := range cells {
		cells[i] = rng.Float64() >= p.VacancyPercentage
	}

	return &Grid{length: p.Length, height: p.Height, occupied: cells}, nil
}

// NewGrid builds a grid from explicit row-major occupancy. The slice is copied.
// Complexity: O(L×H) time and memory.
func NewGrid(length, height int, occupied []bool) (*Grid, error) {
	if length <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidParameter, length, height)
	}
	if length > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d lattice overflows the cell index", ErrInvalidParameter, length, height)
	}
	if len(occupied) != length*height {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d cells, got %d",
			ErrInvalidParameter, length, height, length*height, len(occupied))
	}
	cells := make([]bool, len(occupied))
	copy(cells, occupied)

	return &Grid{length: length, height: height, occupied: cells}, nil
}

// Neighbors returns the in-bounds 4-connected neighbours of index in a
// length×height row-major grid, in the order up, left, down, right.
// An index outside the grid has no neighbours.
// Complexity: O(1).
func Neighbors(index, length, height int) []int {
	if length <= 0 || height <= 0 || length > math.MaxInt/height || index < 0 || index >= length*height {
		return nil
	}
	col, row := index%length, index/length
	out := make([]int, 0, 4)
	for _, d := range neighborOffsets {
		c, r := col+d[0], row+d[1]
		if c < 0 || c >= length || r < 0 || r >= height {
			continue
		}
		out = append(out, r*length+c)
	}

	return out
}

// Neighbors returns the in-bounds 4-connected neighbours of index.
func (g *Grid) Neighbors(index int) []int {
	return Neighbors(index, g.length, g.height)
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.occupied)
}

// Index maps (col,row) to row*length + col.
func (g *Grid) Index(col, row int) int {
	return row*g.length + col
}

// Coordinate converts a row-major index back to (col,row).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % g.length, idx / g.length
}

// InBounds reports whether (col,row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.length && row >= 0 && row < g.height
}

// Occupied reports whether cell idx is occupied. Out-of-range cells are vacant.
func (g *Grid) Occupied(idx int) bool {
	if idx < 0 || idx >= len(g.occupied) {
		return false
	}

	return g.occupied[idx]
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, o := range g.occupied {
		if o {
			n++
		}
	}

	return n
}

// Cells returns a copy of the row-major occupancy.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.occupied))
	copy(out, g.occupied)

	return out
}

// LeftEdge returns the indices of column 0, top to bottom.
func (g *Grid) LeftEdge() []int {
	return EdgeColumn(0, g.length, g.height)
}

// RightEdge returns the indices of column length-1, top to bottom.
func (g *Grid) RightEdge() []int {
	return EdgeColumn(g.length-1, g.length, g.height)
}

// EdgeColumn returns the row-major indices of column col, top to bottom.
// Complexity: O(H).
func EdgeColumn(col, length, height int) []int {
	out := make([]int, height)
	for row := range out {
		out[row] = row*length + col
	}

	return out
}

// String renders one line per row: '#' occupied, '.' vacant.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.occupied) + g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.length; col++ {
			if g.occupied[g.Index(col, row)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if row < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
