package quantity

import (
	"fmt"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/system"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

// To converts the quantity into an equivalent one in the target unit.
//
// Units with equal dimension vectors convert normally: through SI with
// scale and offset. A difference temperature converting toward an
// absolute temperature unit (or the reverse) converts by scale only
// and the result stays a difference: converting a 1 delta_K span "to C"
// yields 1 delta_C, not 274.15. Any other vector mismatch fails with
// IncompatibleDimensions.
func (q Quantity) To(target string) (Quantity, error) {
	tgt, err := unit.New(q.reg, target)
	if err != nil {
		return Quantity{}, err
	}
	return q.convert(tgt)
}

// ToSystem converts the quantity into the equivalent compound unit of
// the target unit system: one system base unit per nonzero dimension
// component, with matching exponents.
func (q Quantity) ToSystem(sys *system.System) (Quantity, error) {
	return q.To(sys.Unit(q.Vector()))
}

func (q Quantity) convert(tgt unit.Unit) (Quantity, error) {
	src := q.unit

	if src.Vector().Equal(tgt.Vector()) {
		out := make([]float64, len(q.values))
		for i, v := range q.values {
			out[i] = (v+src.Offset())*src.Scale()/tgt.Scale() - tgt.Offset()
		}
		return newQuantity(q.reg, out, q.scalar, tgt)
	}

	// A difference source meeting an absolute temperature target (or
	// the reverse) converts in difference space, scale only.
	if src.Kind() == unit.KindTemperatureDifference && isBareAbsoluteTemp(q.reg, tgt) {
		delta, err := unit.New(q.reg, registry.DeltaCounterpart(tgt.Name()))
		if err == nil && src.Vector().Equal(delta.Vector()) {
			return q.convert(delta)
		}
	}
	if isBareAbsoluteTemp(q.reg, src) && tgt.Kind() == unit.KindTemperatureDifference {
		out := make([]float64, len(q.values))
		for i, v := range q.values {
			out[i] = v * src.Scale() / tgt.Scale()
		}
		return newQuantity(q.reg, out, q.scalar, tgt)
	}

	return Quantity{}, &IncompatibleDimensionsError{Left: src.Name(), Right: tgt.Name()}
}

// Float coerces the quantity to a plain number: its SI value. Only
// dimensionless, angle, and solid-angle quantities coerce; everything
// else fails with ErrInvalidFloatCoercion. Arrays never coerce.
func (q Quantity) Float() (float64, error) {
	if !q.scalar {
		return 0, fmt.Errorf("%w: array quantity", ErrInvalidFloatCoercion)
	}
	if !coercible(q.Vector()) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFloatCoercion, q.unit.Name())
	}
	return q.SIValue(), nil
}

// coercible returns true when every component except angle and solid
// angle is zero.
func coercible(vec dimension.Vector) bool {
	for _, base := range dimension.Bases() {
		if base == dimension.Angle || base == dimension.SolidAngle {
			continue
		}
		if vec[base] != 0 {
			return false
		}
	}
	return true
}

// Compare orders two scalar quantities by SI value: -1 if q is less,
// 0 if equal, 1 if greater. The dimension vectors must be equal.
func (q Quantity) Compare(other Quantity) (int, error) {
	if !q.scalar || !other.scalar {
		return 0, fmt.Errorf("%w: comparison requires scalar quantities", ErrShapeMismatch)
	}
	if !q.Vector().Equal(other.Vector()) {
		return 0, &IncompatibleDimensionsError{Left: q.unit.Name(), Right: other.unit.Name()}
	}
	return compareFloats(q.SIValue(), other.SIValue()), nil
}

// CompareFloat orders a dimensionless scalar quantity against a raw
// number via its SI value.
func (q Quantity) CompareFloat(x float64) (int, error) {
	if !q.scalar {
		return 0, fmt.Errorf("%w: comparison requires scalar quantities", ErrShapeMismatch)
	}
	if !q.Dimensionless() {
		return 0, &IncompatibleDimensionsError{Left: q.unit.Name(), Right: ""}
	}
	return compareFloats(q.SIValue(), x), nil
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports q < other.
func (q Quantity) Less(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c < 0, err
}

// LessEqual reports q <= other.
func (q Quantity) LessEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c <= 0, err
}

// Greater reports q > other.
func (q Quantity) Greater(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c > 0, err
}

// GreaterEqual reports q >= other.
func (q Quantity) GreaterEqual(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c >= 0, err
}

// Equal reports q == other by SI value.
func (q Quantity) Equal(other Quantity) (bool, error) {
	c, err := q.Compare(other)
	return c == 0, err
}
