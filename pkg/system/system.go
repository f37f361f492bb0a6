package system

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

// Unit system validation errors.
var (
	ErrInvalidUnitSystem      = errors.New("invalid unit system")
	ErrNotFundamentalUnit     = errors.New("unit system units must be fundamental")
	ErrDuplicateDimensionType = errors.New("duplicate dimension type in unit system")
)

// System assigns one fundamental unit to each base dimension.
// Systems are immutable after construction.
type System struct {
	units map[dimension.Base]string
}

// New builds a System from the registry's SI representatives with the
// given fundamental-unit overrides. Each override must be an exact
// fundamental symbol (derived and composite units are rejected with
// ErrNotFundamentalUnit) and no two overrides may share a base
// dimension (ErrDuplicateDimensionType). A registry that cannot supply
// a representative for every base dimension fails with
// ErrInvalidUnitSystem.
func New(reg *registry.Registry, overrides ...string) (*System, error) {
	units := make(map[dimension.Base]string, dimension.Count)
	for _, base := range dimension.Bases() {
		rep, err := reg.SIRepresentative(base)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidUnitSystem, err)
		}
		units[base] = rep
	}

	seen := make(map[dimension.Base]bool, len(overrides))
	for _, sym := range overrides {
		f, ok := reg.Fundamental(sym)
		if !ok {
			if reg.Known(sym) {
				return nil, fmt.Errorf("%w: %q is derived", ErrNotFundamentalUnit, sym)
			}
			return nil, &unit.UnknownUnitError{Symbol: sym}
		}
		if seen[f.Base] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDimensionType, f.Base)
		}
		seen[f.Base] = true
		units[f.Base] = sym
	}

	return &System{units: units}, nil
}

// SI returns the SI unit system for the registry.
func SI(reg *registry.Registry) (*System, error) {
	return New(reg)
}

// FPS returns the foot-pound-second system: slug mass, foot length,
// second time, Rankine temperature.
func FPS(reg *registry.Registry) (*System, error) {
	return New(reg, "slug", "ft", "s", "R", "delta_R")
}

// Base returns the system's unit for a base dimension.
func (s *System) Base(b dimension.Base) string {
	return s.units[b]
}

// Unit builds the compound unit string for a dimension vector: one
// system base unit per nonzero component, raised to the matching
// exponent. The zero vector yields the empty (dimensionless) string.
func (s *System) Unit(vec dimension.Vector) string {
	var sb strings.Builder
	for _, base := range dimension.Bases() {
		exp := vec[base]
		if exp == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.units[base])
		if exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatFloat(exp, 'g', -1, 64))
		}
	}
	return sb.String()
}
