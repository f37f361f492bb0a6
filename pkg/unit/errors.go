package unit

import (
	"errors"
	"fmt"
)

// Resolution errors.
var (
	// ErrUnknownUnit indicates a token that resolves to no known
	// prefix+symbol combination.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrTableCycle indicates a derived unit whose composition expands
	// beyond the recursion bound, i.e. a cyclic table definition.
	ErrTableCycle = errors.New("cyclic derived unit definition")
)

// UnknownUnitError reports the token that failed to resolve.
// It matches ErrUnknownUnit under errors.Is.
type UnknownUnitError struct {
	Symbol string
}

// Error returns the error message.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Symbol)
}

// Unwrap returns ErrUnknownUnit so callers can match with errors.Is.
func (e *UnknownUnitError) Unwrap() error {
	return ErrUnknownUnit
}
