package log

import (
	"time"
)

// Event represents an engine log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Input is the raw input that triggered the event, e.g. the unit
	// expression handed to the resolver.
	Input string `cbor:"4,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Resolution   *ResolutionEvent   `cbor:"5,keyasint,omitempty"`
	Conversion   *ConversionEvent   `cbor:"6,keyasint,omitempty"`
	Arithmetic   *ArithmeticEvent   `cbor:"7,keyasint,omitempty"`
	Registration *RegistrationEvent `cbor:"8,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"9,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryResolve indicates a unit string resolution.
	CategoryResolve Category = 0

	// CategoryConvert indicates a quantity conversion.
	CategoryConvert Category = 1

	// CategoryArithmetic indicates quantity arithmetic.
	CategoryArithmetic Category = 2

	// CategoryRegister indicates a runtime unit registration.
	CategoryRegister Category = 3

	// CategoryError indicates a failed operation.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryResolve:
		return "RESOLVE"
	case CategoryConvert:
		return "CONVERT"
	case CategoryArithmetic:
		return "ARITHMETIC"
	case CategoryRegister:
		return "REGISTER"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ResolutionEvent captures a unit string resolution.
type ResolutionEvent struct {
	// SI is the canonical SI unit string.
	SI string `cbor:"1,keyasint"`

	// Scale is the cumulative SI scale factor.
	Scale float64 `cbor:"2,keyasint"`

	// Offset is the additive SI offset, if any.
	Offset float64 `cbor:"3,keyasint,omitempty"`

	// Kind is the classified unit kind.
	Kind string `cbor:"4,keyasint,omitempty"`
}

// ConversionEvent captures a quantity conversion.
type ConversionEvent struct {
	// FromUnit and ToUnit are the canonical unit names.
	FromUnit string `cbor:"1,keyasint"`
	ToUnit   string `cbor:"2,keyasint"`

	// FromValue and ToValue are the scalar values.
	FromValue float64 `cbor:"3,keyasint"`
	ToValue   float64 `cbor:"4,keyasint"`
}

// ArithmeticEvent captures a quantity arithmetic operation.
type ArithmeticEvent struct {
	// Op is the operation: "add", "sub", "mul", "div", "pow".
	Op string `cbor:"1,keyasint"`

	// Left and Right are the operand renderings.
	Left  string `cbor:"2,keyasint"`
	Right string `cbor:"3,keyasint,omitempty"`

	// Result is the result rendering.
	Result string `cbor:"4,keyasint,omitempty"`
}

// RegistrationEvent captures a runtime unit registration.
type RegistrationEvent struct {
	// Symbol is the registered unit symbol.
	Symbol string `cbor:"1,keyasint"`

	// Definition is the composition (derived) or dimension (fundamental).
	Definition string `cbor:"2,keyasint,omitempty"`

	// Fundamental is true for fundamental registrations.
	Fundamental bool `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures a failed operation.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what was being attempted.
	Context string `cbor:"2,keyasint,omitempty"`
}
