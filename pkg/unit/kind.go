package unit

import (
	"strings"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
)

// Kind classifies a unit string.
type Kind int

const (
	// KindNone is the classification of the empty unit string.
	KindNone Kind = iota

	// Fundamental kinds, one per base dimension.
	KindMass
	KindLength
	KindTime
	KindTemperature
	KindTemperatureDifference
	KindAngle
	KindAmount
	KindLight
	KindCurrent
	KindSolidAngle

	// KindDerived is an exact derived-unit symbol.
	KindDerived

	// KindComposite is any other compound unit.
	KindComposite

	// KindDimensionless is a compound whose dimension vector is zero.
	KindDimensionless
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no type"
	case KindMass:
		return "mass"
	case KindLength:
		return "length"
	case KindTime:
		return "time"
	case KindTemperature:
		return "temperature"
	case KindTemperatureDifference:
		return "temperature difference"
	case KindAngle:
		return "angle"
	case KindAmount:
		return "chemical amount"
	case KindLight:
		return "light"
	case KindCurrent:
		return "current"
	case KindSolidAngle:
		return "solid angle"
	case KindDerived:
		return "derived"
	case KindComposite:
		return "composite"
	case KindDimensionless:
		return "dimensionless"
	default:
		return "unknown"
	}
}

// KindForBase maps a base dimension to its fundamental kind.
func KindForBase(b dimension.Base) Kind {
	switch b {
	case dimension.Mass:
		return KindMass
	case dimension.Length:
		return KindLength
	case dimension.Time:
		return KindTime
	case dimension.Temperature:
		return KindTemperature
	case dimension.TemperatureDifference:
		return KindTemperatureDifference
	case dimension.Angle:
		return KindAngle
	case dimension.Amount:
		return KindAmount
	case dimension.Light:
		return KindLight
	case dimension.Current:
		return KindCurrent
	case dimension.SolidAngle:
		return KindSolidAngle
	default:
		return KindNone
	}
}

// KindOf classifies a unit string.
//
// The empty string is KindNone. An exact fundamental symbol classifies
// as its declared base dimension; an exact derived symbol as
// KindDerived. Otherwise, if any term is exactly a temperature symbol
// (absolute or delta_ form, never a prefixed or merely suffix-matching
// symbol), the compound classifies as temperature when the term is a
// bare absolute unit at power one without an explicit exponent, and as
// temperature difference for any other exponent or any delta_ form.
// Everything else is KindComposite.
func KindOf(reg *registry.Registry, s string) (Kind, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return KindNone, nil
	}

	if len(fields) == 1 && !HasExplicitPower(fields[0]) {
		if f, ok := reg.Fundamental(fields[0]); ok {
			return KindForBase(f.Base), nil
		}
		if _, ok := reg.Derived(fields[0]); ok {
			return KindDerived, nil
		}
	}

	sawAbsolute := false
	sawDifference := false
	for _, tok := range fields {
		t, err := ParseTerm(reg, tok)
		if err != nil {
			return KindNone, err
		}
		if t.Prefix != "" {
			continue
		}
		f, ok := reg.Fundamental(t.Base)
		if !ok {
			continue
		}
		switch f.Base {
		case dimension.Temperature:
			if t.Power == 1 && !HasExplicitPower(tok) {
				sawAbsolute = true
			} else {
				sawDifference = true
			}
		case dimension.TemperatureDifference:
			sawDifference = true
		}
	}
	switch {
	case sawDifference:
		return KindTemperatureDifference, nil
	case sawAbsolute:
		return KindTemperature, nil
	default:
		return KindComposite, nil
	}
}
