package unit

import (
	"fmt"
	"math"
	"strings"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
)

// maxExpandDepth bounds recursive derived-unit expansion. A well-formed
// table nests a handful of levels; hitting the bound means the table
// definition is cyclic.
const maxExpandDepth = 32

// Resolved is the canonical SI resolution of a compound unit string.
type Resolved struct {
	// SI is the condensed SI-representative unit string.
	SI string

	// Scale is the cumulative multiplicative SI factor.
	Scale float64

	// Offset is the additive SI offset. Nonzero only when the entire
	// input is a single bare absolute-temperature term; the SI value of
	// a reading v is then (v + Offset) * Scale.
	Offset float64

	// Vector is the dimension vector of the resolved unit.
	Vector dimension.Vector
}

// Resolve resolves a compound unit string against the registry:
// prefixes contribute scale^power, fundamentals contribute
// factor^power and their SI-representative symbol, derived units
// contribute factor^power and recursively expand their composition.
// Unknown symbols anywhere, including inside derived expansions,
// fail with an UnknownUnitError.
func Resolve(reg *registry.Registry, s string) (Resolved, error) {
	acc := &accumulator{scale: 1}
	if err := resolveInto(reg, s, 1, 0, acc); err != nil {
		return Resolved{}, err
	}

	terms := condenseTerms(acc.terms)
	var vec dimension.Vector
	for _, t := range terms {
		f, ok := reg.Fundamental(t.sym)
		if !ok {
			// SI terms are emitted from representatives, so this is a
			// table invariant violation rather than bad input.
			return Resolved{}, fmt.Errorf("SI representative %q missing from table", t.sym)
		}
		vec[f.Base] += t.power
	}

	return Resolved{
		SI:     renderTerms(terms),
		Scale:  acc.scale,
		Offset: bareTemperatureOffset(reg, s),
		Vector: vec,
	}, nil
}

type accumulator struct {
	terms []symPower
	scale float64
}

func resolveInto(reg *registry.Registry, s string, power float64, depth int, acc *accumulator) error {
	for _, tok := range strings.Fields(s) {
		t, err := ParseTerm(reg, tok)
		if err != nil {
			return err
		}
		p := t.Power * power

		if t.Prefix != "" {
			scale, _ := reg.Prefix(t.Prefix)
			acc.scale *= math.Pow(scale, p)
		}

		if f, ok := reg.Fundamental(t.Base); ok {
			rep, err := reg.SIRepresentative(f.Base)
			if err != nil {
				return err
			}
			acc.terms = append(acc.terms, symPower{sym: rep, power: p})
			acc.scale *= math.Pow(f.Factor, p)
			continue
		}

		d, ok := reg.Derived(t.Base)
		if !ok {
			return &UnknownUnitError{Symbol: t.Base}
		}
		if depth >= maxExpandDepth {
			return fmt.Errorf("%w: expanding %q", ErrTableCycle, d.Symbol)
		}
		acc.scale *= math.Pow(d.Factor, p)
		if err := resolveInto(reg, d.Composition, p, depth+1, acc); err != nil {
			return err
		}
	}
	return nil
}

// bareTemperatureOffset returns the additive SI offset when the entire
// input is a single unprefixed absolute-temperature term with no
// explicit exponent, and 0 otherwise. Multi-term and exponentiated
// temperature units behave as pure scale factors.
func bareTemperatureOffset(reg *registry.Registry, s string) float64 {
	fields := strings.Fields(s)
	if len(fields) != 1 || HasExplicitPower(fields[0]) {
		return 0
	}
	f, ok := reg.Fundamental(fields[0])
	if !ok || f.Base != dimension.Temperature {
		return 0
	}
	return f.Offset
}
