package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/unitkit/unitkit-go/pkg/dimension"
)

// Registry errors.
var (
	ErrDuplicateUnit    = errors.New("unit already registered")
	ErrUnknownDimension = errors.New("unknown base dimension")
	ErrNoRepresentative = errors.New("no SI representative for dimension")
)

// DeltaPrefix marks the difference form of a temperature unit,
// e.g. "delta_C" is the difference counterpart of "C".
const DeltaPrefix = "delta_"

// Fundamental is a directly defined unit: a base dimension tag, a
// multiplicative SI factor, and an additive SI offset. The offset is
// nonzero only for absolute temperature units; the SI value of a bare
// absolute temperature reading v is (v + Offset) * Factor.
type Fundamental struct {
	Symbol string
	Base   dimension.Base
	Factor float64
	Offset float64
}

// IsTemperature returns true for absolute temperature units.
func (f Fundamental) IsTemperature() bool {
	return f.Base == dimension.Temperature
}

// IsTemperatureDifference returns true for temperature delta units.
func (f Fundamental) IsTemperatureDifference() bool {
	return f.Base == dimension.TemperatureDifference
}

// Derived is a unit defined as a composition of other table units
// (possibly themselves derived) times a multiplicative factor.
type Derived struct {
	Symbol      string
	Composition string
	Factor      float64
}

// Registry is the unit table. Create one with Default, New, or
// tableparse.Build.
type Registry struct {
	mu sync.RWMutex

	prefixes     map[string]float64
	prefixOrder  []string
	fundamentals map[string]Fundamental
	derived      map[string]Derived
	quantities   map[string]string

	// siRep maps each base dimension to its canonical SI representative:
	// the fundamental unit of that dimension with factor exactly 1 and
	// offset 0.
	siRep map[dimension.Base]string
}

// newRegistry builds an empty registry with the given prefix table.
func newRegistry(prefixes map[string]float64) *Registry {
	r := &Registry{
		prefixes:     make(map[string]float64, len(prefixes)),
		fundamentals: make(map[string]Fundamental),
		derived:      make(map[string]Derived),
		quantities:   make(map[string]string),
		siRep:        make(map[dimension.Base]string),
	}
	for sym, scale := range prefixes {
		r.prefixes[sym] = scale
	}
	r.prefixOrder = orderPrefixes(r.prefixes)
	return r
}

// orderPrefixes returns the deterministic prefix iteration order used
// for splitting tokens: longest symbol first, ties broken
// lexicographically. Longest-first means "da" is tried before "d", so
// "dam" splits as deka-meter rather than deci-"am".
func orderPrefixes(prefixes map[string]float64) []string {
	order := make([]string, 0, len(prefixes))
	for sym := range prefixes {
		order = append(order, sym)
	}
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})
	return order
}

// Prefix returns the scale factor for a multiplier prefix symbol.
func (r *Registry) Prefix(symbol string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scale, ok := r.prefixes[symbol]
	return scale, ok
}

// PrefixOrder returns the deterministic prefix iteration order:
// longest symbol first, ties lexicographic. The returned slice is a copy.
func (r *Registry) PrefixOrder() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.prefixOrder))
	copy(out, r.prefixOrder)
	return out
}

// Fundamental looks up a fundamental unit by exact symbol.
func (r *Registry) Fundamental(symbol string) (Fundamental, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fundamentals[symbol]
	return f, ok
}

// Derived looks up a derived unit by exact symbol.
func (r *Registry) Derived(symbol string) (Derived, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.derived[symbol]
	return d, ok
}

// Known returns true if symbol is an exact fundamental or derived symbol.
func (r *Registry) Known(symbol string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, f := r.fundamentals[symbol]
	_, d := r.derived[symbol]
	return f || d
}

// Quantity returns the unit expression registered for a quantity name,
// e.g. "force" -> "N".
func (r *Registry) Quantity(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expr, ok := r.quantities[name]
	return expr, ok
}

// SIRepresentative returns the canonical SI symbol for a base dimension.
func (r *Registry) SIRepresentative(base dimension.Base) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sym, ok := r.siRep[base]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRepresentative, base)
	}
	return sym, nil
}

// Symbols returns all fundamental and derived symbols, sorted.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.fundamentals)+len(r.derived))
	for sym := range r.fundamentals {
		out = append(out, sym)
	}
	for sym := range r.derived {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// QuantityNames returns all registered quantity names, sorted.
func (r *Registry) QuantityNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.quantities))
	for name := range r.quantities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RegisterFundamental adds a fundamental unit at runtime.
// Registration is at most once per symbol: a symbol already present as
// a fundamental or derived unit fails with ErrDuplicateUnit.
func (r *Registry) RegisterFundamental(f Fundamental) error {
	if f.Symbol == "" {
		return errors.New("empty unit symbol")
	}
	if !f.Base.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDimension, f.Base)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fundamentals[f.Symbol]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, f.Symbol)
	}
	if _, ok := r.derived[f.Symbol]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, f.Symbol)
	}
	r.fundamentals[f.Symbol] = f
	if f.Factor == 1 && f.Offset == 0 {
		if _, ok := r.siRep[f.Base]; !ok {
			r.siRep[f.Base] = f.Symbol
		}
	}
	return nil
}

// RegisterDerived adds a derived unit at runtime.
// The composition is not resolved here; bad compositions surface as
// resolution errors when the symbol is first used.
func (r *Registry) RegisterDerived(d Derived) error {
	if d.Symbol == "" {
		return errors.New("empty unit symbol")
	}
	if strings.TrimSpace(d.Composition) == "" {
		return fmt.Errorf("derived unit %q has empty composition", d.Symbol)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fundamentals[d.Symbol]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, d.Symbol)
	}
	if _, ok := r.derived[d.Symbol]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateUnit, d.Symbol)
	}
	r.derived[d.Symbol] = d
	return nil
}

// RegisterQuantity maps a quantity name to a unit expression.
func (r *Registry) RegisterQuantity(name, expr string) error {
	if name == "" {
		return errors.New("empty quantity name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quantities[name]; ok {
		return fmt.Errorf("%w: quantity %q", ErrDuplicateUnit, name)
	}
	r.quantities[name] = expr
	return nil
}

// DeltaCounterpart returns the difference form of an absolute
// temperature symbol, e.g. "C" -> "delta_C".
func DeltaCounterpart(symbol string) string {
	return DeltaPrefix + symbol
}

// AbsoluteCounterpart returns the absolute form of a temperature
// difference symbol and true, or ("", false) if symbol has no delta prefix.
func AbsoluteCounterpart(symbol string) (string, bool) {
	if rest, ok := strings.CutPrefix(symbol, DeltaPrefix); ok {
		return rest, true
	}
	return "", false
}
