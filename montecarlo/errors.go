package montecarlo

import (
	"errors"

	"github.com/katalvlaran/percolate/lattice"
)

var (
	// ErrInvalidParameter is the shared validation sentinel; it is the same
	// value as lattice.ErrInvalidParameter.
	ErrInvalidParameter = lattice.ErrInvalidParameter
	// ErrRender indicates the configured Renderer returned an error.
	ErrRender = errors.New("montecarlo: render failed")
)
