package lattice

import "errors"

var (
	// ErrInvalidParameter indicates a lattice parameter outside its domain:
	// non-positive dimensions, a vacancy percentage outside [0,1], or an
	// occupancy slice whose length does not match the dimensions.
	ErrInvalidParameter = errors.New("lattice: invalid parameter")
	// ErrNilSource indicates Generate was called without a random source.
	ErrNilSource = errors.New("lattice: random source is required")
)
