package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange classifies every index error reported or raised by Vector.
var ErrOutOfRange = errors.New("vector: index out of range")

// IndexError records the operation and index that fell outside the live range.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("vector: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func outOfRange(op string, index, length int) *IndexError {
	return &IndexError{Op: op, Index: index, Len: length}
}
