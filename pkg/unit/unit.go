package unit

import (
	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
)

// Unit is an immutable resolved unit: the canonical condensed name
// together with its SI resolution, dimension vector, and classified
// kind. Units are value objects; every operation returns a new Unit.
type Unit struct {
	name   string
	si     string
	scale  float64
	offset float64
	vector dimension.Vector
	kind   Kind
}

// New resolves a compound unit string into a Unit.
func New(reg *registry.Registry, s string) (Unit, error) {
	name := Condense(s)
	res, err := Resolve(reg, name)
	if err != nil {
		return Unit{}, err
	}

	kind, err := KindOf(reg, name)
	if err != nil {
		return Unit{}, err
	}
	if kind == KindComposite && res.Vector.IsZero() {
		kind = KindDimensionless
	}
	if name == "" {
		kind = KindDimensionless
	}

	return Unit{
		name:   name,
		si:     res.SI,
		scale:  res.Scale,
		offset: res.Offset,
		vector: res.Vector,
		kind:   kind,
	}, nil
}

// Name returns the canonical condensed unit string.
func (u Unit) Name() string { return u.name }

// SI returns the canonical SI-representative unit string.
func (u Unit) SI() string { return u.si }

// Scale returns the cumulative multiplicative SI factor.
func (u Unit) Scale() float64 { return u.scale }

// Offset returns the additive SI offset (nonzero only for bare
// absolute temperature units).
func (u Unit) Offset() float64 { return u.offset }

// Vector returns the dimension vector.
func (u Unit) Vector() dimension.Vector { return u.vector }

// Kind returns the classified kind.
func (u Unit) Kind() Kind { return u.kind }

// Dimensionless returns true if the dimension vector is zero.
func (u Unit) Dimensionless() bool { return u.vector.IsZero() }

// Mul returns the unit multiplied by other.
func (u Unit) Mul(reg *registry.Registry, other Unit) (Unit, error) {
	return New(reg, Multiply(u.name, other.name))
}

// Div returns the unit divided by other.
func (u Unit) Div(reg *registry.Registry, other Unit) (Unit, error) {
	return New(reg, Divide(u.name, other.name))
}

// Pow returns the unit raised to power p.
func (u Unit) Pow(reg *registry.Registry, p float64) (Unit, error) {
	return New(reg, Pow(u.name, p))
}

// SameDimension returns all table symbols (fundamental and derived)
// whose dimension vectors equal this unit's, sorted.
func (u Unit) SameDimension(reg *registry.Registry) ([]string, error) {
	var out []string
	for _, sym := range reg.Symbols() {
		res, err := Resolve(reg, sym)
		if err != nil {
			return nil, err
		}
		if res.Vector.Equal(u.vector) {
			out = append(out, sym)
		}
	}
	return out, nil
}
