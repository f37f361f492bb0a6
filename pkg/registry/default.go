package registry

import (
	"fmt"
	"math"

	"github.com/unitkit/unitkit-go/pkg/dimension"
)

// Standard multiplier prefixes, SI yocto through yotta.
var defaultPrefixes = map[string]float64{
	"Y":  1e24,
	"Z":  1e21,
	"E":  1e18,
	"P":  1e15,
	"T":  1e12,
	"G":  1e9,
	"M":  1e6,
	"k":  1e3,
	"h":  1e2,
	"da": 1e1,
	"d":  1e-1,
	"c":  1e-2,
	"m":  1e-3,
	"u":  1e-6,
	"n":  1e-9,
	"p":  1e-12,
	"f":  1e-15,
	"a":  1e-18,
	"z":  1e-21,
	"y":  1e-24,
}

// rankineFactor converts Rankine (and Fahrenheit) degrees to kelvins.
const rankineFactor = 5.0 / 9.0

var defaultFundamentals = []Fundamental{
	// Mass. kg is the SI representative; grams carry the 1e-3 factor so
	// prefixed forms like "mg" still resolve correctly.
	{Symbol: "kg", Base: dimension.Mass, Factor: 1},
	{Symbol: "g", Base: dimension.Mass, Factor: 1e-3},
	{Symbol: "lb", Base: dimension.Mass, Factor: 0.45359237},
	{Symbol: "oz", Base: dimension.Mass, Factor: 0.028349523125},
	{Symbol: "slug", Base: dimension.Mass, Factor: 14.59390293720636},

	// Length.
	{Symbol: "m", Base: dimension.Length, Factor: 1},
	{Symbol: "ft", Base: dimension.Length, Factor: 0.3048},
	{Symbol: "in", Base: dimension.Length, Factor: 0.0254},
	{Symbol: "yd", Base: dimension.Length, Factor: 0.9144},
	{Symbol: "mi", Base: dimension.Length, Factor: 1609.344},
	{Symbol: "nmi", Base: dimension.Length, Factor: 1852},

	// Time.
	{Symbol: "s", Base: dimension.Time, Factor: 1},
	{Symbol: "min", Base: dimension.Time, Factor: 60},
	{Symbol: "hr", Base: dimension.Time, Factor: 3600},
	{Symbol: "day", Base: dimension.Time, Factor: 86400},

	// Absolute temperature. The SI value of a bare reading v is
	// (v + Offset) * Factor.
	{Symbol: "K", Base: dimension.Temperature, Factor: 1},
	{Symbol: "C", Base: dimension.Temperature, Factor: 1, Offset: 273.15},
	{Symbol: "F", Base: dimension.Temperature, Factor: rankineFactor, Offset: 459.67},
	{Symbol: "R", Base: dimension.Temperature, Factor: rankineFactor},

	// Temperature differences: same scales, never an offset.
	{Symbol: "delta_K", Base: dimension.TemperatureDifference, Factor: 1},
	{Symbol: "delta_C", Base: dimension.TemperatureDifference, Factor: 1},
	{Symbol: "delta_F", Base: dimension.TemperatureDifference, Factor: rankineFactor},
	{Symbol: "delta_R", Base: dimension.TemperatureDifference, Factor: rankineFactor},

	// Angle.
	{Symbol: "radian", Base: dimension.Angle, Factor: 1},
	{Symbol: "degree", Base: dimension.Angle, Factor: math.Pi / 180},
	{Symbol: "rev", Base: dimension.Angle, Factor: 2 * math.Pi},

	// Chemical amount.
	{Symbol: "mol", Base: dimension.Amount, Factor: 1},
	{Symbol: "lbmol", Base: dimension.Amount, Factor: 453.59237},

	// Luminous intensity.
	{Symbol: "cd", Base: dimension.Light, Factor: 1},

	// Electric current.
	{Symbol: "A", Base: dimension.Current, Factor: 1},

	// Solid angle.
	{Symbol: "sr", Base: dimension.SolidAngle, Factor: 1},
}

var defaultDerived = []Derived{
	{Symbol: "Hz", Composition: "s^-1", Factor: 1},
	{Symbol: "N", Composition: "kg m s^-2", Factor: 1},
	{Symbol: "Pa", Composition: "N m^-2", Factor: 1},
	{Symbol: "J", Composition: "N m", Factor: 1},
	{Symbol: "W", Composition: "J s^-1", Factor: 1},
	{Symbol: "V", Composition: "W A^-1", Factor: 1},
	{Symbol: "ohm", Composition: "V A^-1", Factor: 1},
	{Symbol: "Wh", Composition: "W hr", Factor: 1},
	{Symbol: "bar", Composition: "Pa", Factor: 1e5},
	{Symbol: "atm", Composition: "Pa", Factor: 101325},
	{Symbol: "lbf", Composition: "slug ft s^-2", Factor: 1},
	{Symbol: "psi", Composition: "lbf in^-2", Factor: 1},
	{Symbol: "L", Composition: "m^3", Factor: 1e-3},
	{Symbol: "gal", Composition: "in^3", Factor: 231},
	{Symbol: "cal", Composition: "J", Factor: 4.184},
	{Symbol: "Btu", Composition: "J", Factor: 1055.05585262},
	{Symbol: "hp", Composition: "W", Factor: 745.69987158227022},
	{Symbol: "mph", Composition: "mi hr^-1", Factor: 1},
	{Symbol: "knot", Composition: "nmi hr^-1", Factor: 1},
}

var defaultQuantities = map[string]string{
	"mass":         "kg",
	"length":       "m",
	"time":         "s",
	"temperature":  "K",
	"angle":        "radian",
	"current":      "A",
	"area":         "m^2",
	"volume":       "m^3",
	"velocity":     "m s^-1",
	"acceleration": "m s^-2",
	"density":      "kg m^-3",
	"frequency":    "Hz",
	"force":        "N",
	"pressure":     "Pa",
	"energy":       "J",
	"power":        "W",
	"charge":       "A s",
	"voltage":      "V",
}

// Default returns a fresh registry populated with the built-in table:
// SI units, common US customary units, the four temperature scales with
// their delta_ forms, and a set of derived units. Each call returns an
// independent registry, so runtime extensions never leak between
// consumers.
func Default() *Registry {
	r := newRegistry(defaultPrefixes)
	for _, f := range defaultFundamentals {
		if err := r.RegisterFundamental(f); err != nil {
			panic(fmt.Sprintf("registry: bad built-in fundamental %q: %v", f.Symbol, err))
		}
	}
	for _, d := range defaultDerived {
		if err := r.RegisterDerived(d); err != nil {
			panic(fmt.Sprintf("registry: bad built-in derived %q: %v", d.Symbol, err))
		}
	}
	for name, expr := range defaultQuantities {
		if err := r.RegisterQuantity(name, expr); err != nil {
			panic(fmt.Sprintf("registry: bad built-in quantity %q: %v", name, err))
		}
	}
	return r
}

// New returns an empty registry with the standard prefix table.
// External table data is loaded through the tableparse package.
func New() *Registry {
	return newRegistry(defaultPrefixes)
}

// NewWithPrefixes returns an empty registry with a custom prefix table.
func NewWithPrefixes(prefixes map[string]float64) *Registry {
	return newRegistry(prefixes)
}
