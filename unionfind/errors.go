package unionfind

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates New was called with a negative element count.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrOutOfBounds indicates an element index outside [0, n).
	ErrOutOfBounds = errors.New("unionfind: index out of bounds")
)

// IndexError is returned when an index outside [0, Size) is used.
// It matches ErrOutOfBounds under errors.Is.
type IndexError struct {
	Index, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("unionfind: index %d out of bounds [0, %d)", e.Index, e.Size)
}

// Unwrap exposes ErrOutOfBounds to errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}
