package lattice

import (
	"fmt"
	"math"
)

// Source yields uniform values in [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Params configures one lattice.
type Params struct {
	// Length is the number of columns (left to right).
	Length int
	// Height is the number of rows (top to bottom).
	Height int
	// VacancyPercentage is the probability in [0,1] that a cell is vacant.
	VacancyPercentage float64
}

// Validate reports the first parameter outside its domain.
// The returned error wraps ErrInvalidParameter and names the field.
func (p Params) Validate() error {
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidParameter, p.Length)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidParameter, p.Height)
	}
	if p.Length > math.MaxInt/p.Height {
		return fmt.Errorf("%w: %dx%d lattice overflows the cell index", ErrInvalidParameter, p.Length, p.Height)
	}
	v := p.VacancyPercentage
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: vacancy percentage must be in [0,1], got %g", ErrInvalidParameter, v)
	}

	return nil
}

// Size returns Length*Height.
func (p Params) Size() int {
	return p.Length * p.Height
}

// Grid is an immutable length×height occupancy lattice in row-major order.
type Grid struct {
	length, height int
	occupied       []bool
}

// Length returns the number of columns.
func (g *Grid) Length() int { return g.length }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }
