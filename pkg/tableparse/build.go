package tableparse

import (
	"fmt"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/unit"
	"github.com/unitkit/unitkit-go/pkg/version"
)

// Build constructs a validated registry from raw table data.
//
// The table version must be compatible with version.Current. After all
// entries are registered, every derived composition and quantity
// expression is resolved once; unknown symbols and cyclic definitions
// fail the build rather than surfacing later at first use.
func Build(raw *RawTable) (*registry.Registry, error) {
	tv, err := version.Parse(raw.TableVersion)
	if err != nil {
		return nil, err
	}
	current, err := version.Parse(version.Current)
	if err != nil {
		return nil, err
	}
	if !current.Compatible(tv) {
		return nil, fmt.Errorf("table version %s is not compatible with %s", tv, current)
	}

	var reg *registry.Registry
	if len(raw.Prefixes) > 0 {
		reg = registry.NewWithPrefixes(raw.Prefixes)
	} else {
		reg = registry.New()
	}

	for _, f := range raw.Fundamentals {
		base, err := dimension.ParseBase(f.Dimension)
		if err != nil {
			return nil, fmt.Errorf("fundamental %q: %w", f.Symbol, err)
		}
		err = reg.RegisterFundamental(registry.Fundamental{
			Symbol: f.Symbol,
			Base:   base,
			Factor: f.Factor,
			Offset: f.Offset,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, d := range raw.Derived {
		err := reg.RegisterDerived(registry.Derived{
			Symbol:      d.Symbol,
			Composition: d.Composition,
			Factor:      d.Factor,
		})
		if err != nil {
			return nil, err
		}
	}

	for name, expr := range raw.Quantities {
		if err := reg.RegisterQuantity(name, expr); err != nil {
			return nil, err
		}
	}

	for _, d := range raw.Derived {
		if _, err := unit.Resolve(reg, d.Symbol); err != nil {
			return nil, fmt.Errorf("derived %q: %w", d.Symbol, err)
		}
	}
	for _, name := range reg.QuantityNames() {
		expr, _ := reg.Quantity(name)
		if _, err := unit.Resolve(reg, expr); err != nil {
			return nil, fmt.Errorf("quantity %q: %w", name, err)
		}
	}

	return reg, nil
}
