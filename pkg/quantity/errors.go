package quantity

import (
	"errors"
	"fmt"
)

// Quantity errors.
var (
	// ErrIncompatibleDimensions indicates an operation across mismatched
	// dimension vectors or unit conventions.
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")

	// ErrExcessiveParameters indicates mutually exclusive construction
	// arguments.
	ErrExcessiveParameters = errors.New("excessive construction parameters")

	// ErrInsufficientArguments indicates missing construction arguments.
	ErrInsufficientArguments = errors.New("insufficient construction arguments")

	// ErrInvalidFloatCoercion indicates numeric coercion of a quantity
	// that is not dimensionless, angle, or solid angle.
	ErrInvalidFloatCoercion = errors.New("quantity does not coerce to a number")

	// ErrShapeMismatch indicates an elementwise operation across arrays
	// of different shapes.
	ErrShapeMismatch = errors.New("value shape mismatch")
)

// IncompatibleDimensionsError reports the two unit strings involved.
// It matches ErrIncompatibleDimensions under errors.Is.
type IncompatibleDimensionsError struct {
	Left  string
	Right string
}

// Error returns the error message.
func (e *IncompatibleDimensionsError) Error() string {
	return fmt.Sprintf("incompatible dimensions: %q and %q", e.Left, e.Right)
}

// Unwrap returns ErrIncompatibleDimensions so callers can match with
// errors.Is.
func (e *IncompatibleDimensionsError) Unwrap() error {
	return ErrIncompatibleDimensions
}
