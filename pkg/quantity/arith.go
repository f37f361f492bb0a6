package quantity

import (
	"math"

	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

// combineValues applies f elementwise across two value arrays.
// A scalar broadcasts against an array; two arrays must share a shape.
func combineValues(a, b Quantity, f func(x, y float64) float64) ([]float64, bool, error) {
	switch {
	case a.scalar && b.scalar:
		return []float64{f(a.values[0], b.values[0])}, true, nil
	case a.scalar:
		out := make([]float64, len(b.values))
		for i, y := range b.values {
			out[i] = f(a.values[0], y)
		}
		return out, false, nil
	case b.scalar:
		out := make([]float64, len(a.values))
		for i, x := range a.values {
			out[i] = f(x, b.values[0])
		}
		return out, false, nil
	default:
		if len(a.values) != len(b.values) {
			return nil, false, ErrShapeMismatch
		}
		out := make([]float64, len(a.values))
		for i, x := range a.values {
			out[i] = f(x, b.values[i])
		}
		return out, false, nil
	}
}

// Mul multiplies two quantities. Units compose as pure scale factors;
// temperature offsets are never applied.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	u, err := q.unit.Mul(q.reg, other.unit)
	if err != nil {
		return Quantity{}, err
	}
	values, scalar, err := combineValues(q, other, func(x, y float64) float64 { return x * y })
	if err != nil {
		return Quantity{}, err
	}
	return newQuantity(q.reg, values, scalar, u)
}

// Div divides two quantities. Units compose as pure scale factors.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	u, err := q.unit.Div(q.reg, other.unit)
	if err != nil {
		return Quantity{}, err
	}
	values, scalar, err := combineValues(q, other, func(x, y float64) float64 { return x / y })
	if err != nil {
		return Quantity{}, err
	}
	return newQuantity(q.reg, values, scalar, u)
}

// MulFloat scales the value by a raw number, leaving the unit unchanged.
func (q Quantity) MulFloat(x float64) Quantity {
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = v * x
	}
	return Quantity{reg: q.reg, values: out, scalar: q.scalar, unit: q.unit}
}

// Pow raises the quantity to a power: the value elementwise, the unit's
// dimension vector scaled by p.
func (q Quantity) Pow(p float64) (Quantity, error) {
	u, err := q.unit.Pow(q.reg, p)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = math.Pow(v, p)
	}
	return newQuantity(q.reg, out, q.scalar, u)
}

// Add adds two quantities under the asymmetric temperature rules.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return q.addSub(other, false)
}

// Sub subtracts other from q. Subtracting two absolute temperatures of
// the same scale yields the matching difference unit.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	return q.addSub(other, true)
}

func (q Quantity) addSub(other Quantity, subtract bool) (Quantity, error) {
	result, err := addSubUnit(q.reg, q.unit, other.unit, subtract)
	if err != nil {
		return Quantity{}, err
	}

	a, err := operandIn(q, result)
	if err != nil {
		return Quantity{}, err
	}
	b, err := operandIn(other, result)
	if err != nil {
		return Quantity{}, err
	}

	f := func(x, y float64) float64 { return x + y }
	if subtract {
		f = func(x, y float64) float64 { return x - y }
	}
	values, scalar, err := combineValues(a, b, f)
	if err != nil {
		return Quantity{}, err
	}
	return newQuantity(q.reg, values, scalar, result)
}

// addSubUnit resolves the result unit for addition/subtraction:
//
//	identical units                      -> same unit
//	absolute temp - same absolute temp   -> its delta_ counterpart
//	absolute temp +/- its delta_ form    -> the absolute unit
//	delta_ form + its absolute temp      -> the absolute unit
//	anything else                        -> IncompatibleDimensions
//
// Two different absolute temperature scales never combine without a
// prior conversion.
func addSubUnit(reg *registry.Registry, a, b unit.Unit, subtract bool) (unit.Unit, error) {
	aAbs := isBareAbsoluteTemp(reg, a)
	bAbs := isBareAbsoluteTemp(reg, b)

	if a.Name() == b.Name() {
		if subtract && aAbs && bAbs {
			return unit.New(reg, registry.DeltaCounterpart(a.Name()))
		}
		return a, nil
	}
	if aAbs && b.Name() == registry.DeltaCounterpart(a.Name()) {
		return a, nil
	}
	if !subtract && bAbs && a.Name() == registry.DeltaCounterpart(b.Name()) {
		return b, nil
	}
	return unit.Unit{}, &IncompatibleDimensionsError{Left: a.Name(), Right: b.Name()}
}

// isBareAbsoluteTemp reports whether u is exactly one absolute
// temperature fundamental at power one.
func isBareAbsoluteTemp(reg *registry.Registry, u unit.Unit) bool {
	if u.Kind() != unit.KindTemperature {
		return false
	}
	_, ok := reg.Fundamental(u.Name())
	return ok
}

// operandIn converts an operand into the result unit's convention
// before combining values. Conversion into a difference unit, and of a
// difference operand into an absolute unit, uses scale only; an
// absolute operand converting into an absolute unit uses scale and
// offset normally.
func operandIn(q Quantity, result unit.Unit) (Quantity, error) {
	if q.unit.Name() == result.Name() {
		return q, nil
	}

	scaleOnly := result.Kind() == unit.KindTemperatureDifference ||
		q.unit.Kind() == unit.KindTemperatureDifference

	out := make([]float64, len(q.values))
	for i, v := range q.values {
		if scaleOnly {
			out[i] = v * q.unit.Scale() / result.Scale()
		} else {
			out[i] = (v+q.unit.Offset())*q.unit.Scale()/result.Scale() - result.Offset()
		}
	}
	return Quantity{reg: q.reg, values: out, scalar: q.scalar, unit: result}, nil
}
