package quantity

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/system"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

// Quantity is an immutable numeric value (scalar or fixed-shape array)
// bound to a resolved unit.
type Quantity struct {
	reg    *registry.Registry
	values []float64
	scalar bool
	unit   unit.Unit
}

// New creates a scalar quantity from a unit string.
func New(reg *registry.Registry, value float64, unitString string) (Quantity, error) {
	u, err := unit.New(reg, unitString)
	if err != nil {
		return Quantity{}, err
	}
	return newQuantity(reg, []float64{value}, true, u)
}

// NewSlice creates an array quantity from a unit string. The values
// slice is copied; its length fixes the quantity's shape.
func NewSlice(reg *registry.Registry, values []float64, unitString string) (Quantity, error) {
	if len(values) == 0 {
		return Quantity{}, fmt.Errorf("%w: empty value array", ErrInsufficientArguments)
	}
	u, err := unit.New(reg, unitString)
	if err != nil {
		return Quantity{}, err
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return newQuantity(reg, vals, false, u)
}

// Options selects one construction source for NewFromOptions. Exactly
// one of Unit, Vector, or Named must be set. System applies only with
// Vector and defaults to SI.
type Options struct {
	// Unit is a compound unit string.
	Unit string

	// Vector constructs the unit from a dimension vector using System.
	Vector *dimension.Vector

	// System is the target unit system for Vector construction.
	System *system.System

	// Named composes the unit from registered quantity names raised to
	// the given exponents, e.g. {"force": 1, "length": -2}.
	Named map[string]float64
}

// NewFromOptions creates a scalar quantity from one of the supported
// construction sources. More than one source fails with
// ErrExcessiveParameters, none with ErrInsufficientArguments.
func NewFromOptions(reg *registry.Registry, value float64, opts Options) (Quantity, error) {
	sources := 0
	if opts.Unit != "" {
		sources++
	}
	if opts.Vector != nil {
		sources++
	}
	if opts.Named != nil {
		sources++
	}
	switch {
	case sources == 0:
		return Quantity{}, fmt.Errorf("%w: one of Unit, Vector, or Named required", ErrInsufficientArguments)
	case sources > 1:
		return Quantity{}, fmt.Errorf("%w: Unit, Vector, and Named are mutually exclusive", ErrExcessiveParameters)
	}
	if opts.System != nil && opts.Vector == nil {
		return Quantity{}, fmt.Errorf("%w: System requires Vector", ErrExcessiveParameters)
	}

	switch {
	case opts.Unit != "":
		return New(reg, value, opts.Unit)

	case opts.Vector != nil:
		sys := opts.System
		if sys == nil {
			var err error
			sys, err = system.SI(reg)
			if err != nil {
				return Quantity{}, err
			}
		}
		return New(reg, value, sys.Unit(*opts.Vector))

	default:
		expr, err := composeNamed(reg, opts.Named)
		if err != nil {
			return Quantity{}, err
		}
		return New(reg, value, expr)
	}
}

// composeNamed multiplies the units registered for quantity names,
// each raised to its exponent. Names are visited in sorted order so
// the composed unit string is deterministic.
func composeNamed(reg *registry.Registry, named map[string]float64) (string, error) {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	expr := ""
	for _, name := range names {
		unitExpr, ok := reg.Quantity(name)
		if !ok {
			return "", fmt.Errorf("unknown quantity name %q: %w", name, unit.ErrUnknownUnit)
		}
		expr = unit.Multiply(expr, unit.Pow(unitExpr, named[name]))
	}
	return expr, nil
}

// newQuantity applies the construction invariant: an absolute
// temperature whose value sits below absolute zero is reclassified to
// the matching delta_ unit.
func newQuantity(reg *registry.Registry, values []float64, scalar bool, u unit.Unit) (Quantity, error) {
	if u.Kind() == unit.KindTemperature {
		if f, ok := reg.Fundamental(u.Name()); ok && belowFloor(values, f) {
			delta, err := unit.New(reg, registry.DeltaCounterpart(u.Name()))
			if err == nil {
				u = delta
			}
		}
	}
	return Quantity{reg: reg, values: values, scalar: scalar, unit: u}, nil
}

// belowFloor reports whether any value is below absolute zero on the
// given temperature scale.
func belowFloor(values []float64, f registry.Fundamental) bool {
	for _, v := range values {
		if (v+f.Offset)*f.Factor < 0 {
			return true
		}
	}
	return false
}

// Value returns the scalar value (the first element for arrays).
func (q Quantity) Value() float64 {
	return q.values[0]
}

// Values returns a copy of the value array.
func (q Quantity) Values() []float64 {
	out := make([]float64, len(q.values))
	copy(out, q.values)
	return out
}

// Scalar returns true for scalar quantities.
func (q Quantity) Scalar() bool { return q.scalar }

// Unit returns the resolved unit.
func (q Quantity) Unit() unit.Unit { return q.unit }

// SIValue returns the scalar value expressed in SI units. For a bare
// absolute temperature this applies both offset and scale.
func (q Quantity) SIValue() float64 {
	return (q.values[0] + q.unit.Offset()) * q.unit.Scale()
}

// SIValues returns the value array expressed in SI units.
func (q Quantity) SIValues() []float64 {
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = (v + q.unit.Offset()) * q.unit.Scale()
	}
	return out
}

// SIUnit returns the canonical SI unit string.
func (q Quantity) SIUnit() string { return q.unit.SI() }

// Vector returns the dimension vector.
func (q Quantity) Vector() dimension.Vector { return q.unit.Vector() }

// Dimensionless returns true if the dimension vector is zero.
func (q Quantity) Dimensionless() bool { return q.unit.Dimensionless() }

// Kind returns the unit's classified kind.
func (q Quantity) Kind() unit.Kind { return q.unit.Kind() }

// String renders the quantity as "value unit" ("value" when
// dimensionless). Arrays render their first element with an ellipsis.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.values[0], 'g', -1, 64)
	if !q.scalar {
		v += "..."
	}
	if q.unit.Name() == "" {
		return v
	}
	return v + " " + q.unit.Name()
}
