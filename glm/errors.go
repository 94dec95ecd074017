package glm

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrDimension   = errors.New("dimension mismatch")
)

// OutOfBoundsError is the panic value of an access outside a vector or
// matrix. It always indicates a bug in the caller.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// DimensionError is the panic value of a constructor that received the wrong
// number of components, or of a widening into a dimension that is too small.
// Mismatches between typed values are compile errors instead.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: got %d, want %d", e.Got, e.Want)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimension
}

func checkIndex(idx, n int) {
	if idx < 0 || idx >= n {
		panic(&OutOfBoundsError{Index: idx, Len: n})
	}
}
