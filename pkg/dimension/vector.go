package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// Base identifies one of the ten base physical dimensions.
type Base int

const (
	// Mass is the mass dimension (SI representative: kg).
	Mass Base = iota

	// Length is the length dimension (SI representative: m).
	Length

	// Time is the time dimension (SI representative: s).
	Time

	// Temperature is the absolute temperature dimension (SI representative: K).
	Temperature

	// TemperatureDifference is the temperature delta dimension.
	// Kept separate from Temperature so offsets are never applied to deltas.
	TemperatureDifference

	// Angle is the plane angle dimension (SI representative: radian).
	Angle

	// Amount is the chemical amount dimension (SI representative: mol).
	Amount

	// Light is the luminous intensity dimension (SI representative: cd).
	Light

	// Current is the electric current dimension (SI representative: A).
	Current

	// SolidAngle is the solid angle dimension (SI representative: sr).
	SolidAngle

	baseCount
)

// Count is the number of base dimensions.
const Count = int(baseCount)

// Bases returns all base dimensions in vector order.
func Bases() []Base {
	bases := make([]Base, Count)
	for i := range bases {
		bases[i] = Base(i)
	}
	return bases
}

// String returns the dimension name.
func (b Base) String() string {
	switch b {
	case Mass:
		return "mass"
	case Length:
		return "length"
	case Time:
		return "time"
	case Temperature:
		return "temperature"
	case TemperatureDifference:
		return "temperature difference"
	case Angle:
		return "angle"
	case Amount:
		return "chemical amount"
	case Light:
		return "light"
	case Current:
		return "current"
	case SolidAngle:
		return "solid angle"
	default:
		return "unknown"
	}
}

// Valid returns true if b is a known base dimension.
func (b Base) Valid() bool {
	return b >= 0 && b < baseCount
}

// ParseBase maps a dimension name (as used in table data) back to its
// Base constant.
func ParseBase(name string) (Base, error) {
	for _, b := range Bases() {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown base dimension %q", name)
}

// Vector is an exponent tuple over the base dimensions.
// The zero value is the dimensionless vector.
type Vector [Count]float64

// Add returns the component-wise sum of v and other.
// Multiplying two units sums their vectors.
func (v Vector) Add(other Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

// Sub returns the component-wise difference of v and other.
// Dividing two units subtracts their vectors.
func (v Vector) Sub(other Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out
}

// Scale returns v with every exponent multiplied by factor.
// Raising a unit to a power scales its vector.
func (v Vector) Scale(factor float64) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * factor
	}
	return out
}

// Equal returns true if all exponents match exactly.
func (v Vector) Equal(other Vector) bool {
	return v == other
}

// IsZero returns true if every exponent is zero (dimensionless).
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String renders the nonzero components as "name^exponent" terms,
// e.g. "mass length^2 time^-2". Whole exponents render without a
// decimal point; the unit exponent is omitted. Returns "" for the
// dimensionless vector.
func (v Vector) String() string {
	var sb strings.Builder
	for i, exp := range v {
		if exp == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Base(i).String())
		if exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatFloat(exp, 'g', -1, 64))
		}
	}
	return sb.String()
}
