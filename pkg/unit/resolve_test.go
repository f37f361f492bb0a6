package unit

import (
	"errors"
	"math"
	"testing"

	"github.com/unitkit/unitkit-go/pkg/registry"
)

const tolerance = 1e-12

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tolerance*math.Max(math.Abs(a), math.Abs(b))
}

func TestResolve(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		in     string
		si     string
		scale  float64
		offset float64
	}{
		{"m", "m", 1, 0},
		{"km", "m", 1000, 0},
		{"ft", "m", 0.3048, 0},
		{"kg m s^-2", "kg m s^-2", 1, 0},
		{"N", "kg m s^-2", 1, 0},
		// Pa expands recursively through N.
		{"Pa", "kg m^-1 s^-2", 1, 0},
		{"kPa", "kg m^-1 s^-2", 1000, 0},
		{"kPa^-2", "kg^-2 m^2 s^4", 1e-6, 0},
		{"bar", "kg m^-1 s^-2", 1e5, 0},
		{"Hz", "s^-1", 1, 0},
		{"mph", "m s^-1", 1609.344 / 3600, 0},
		// A bare absolute temperature carries its offset.
		{"C", "K", 1, 273.15},
		{"F", "K", 5.0 / 9.0, 459.67},
		{"K", "K", 1, 0},
		// Exponentiated or compound temperatures have no offset.
		{"C^2", "K^2", 1, 0},
		{"C m", "K m", 1, 0},
		{"delta_C", "delta_K", 1, 0},
		// Prefix scale composes with the term power.
		{"km^2", "m^2", 1e6, 0},
		{"", "", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res, err := Resolve(reg, tt.in)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.in, err)
			}
			if res.SI != tt.si {
				t.Errorf("SI = %q, want %q", res.SI, tt.si)
			}
			if !almostEqual(res.Scale, tt.scale) {
				t.Errorf("Scale = %g, want %g", res.Scale, tt.scale)
			}
			if res.Offset != tt.offset {
				t.Errorf("Offset = %g, want %g", res.Offset, tt.offset)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := registry.Default()

	for _, in := range []string{"xyz", "m xyz", "kg xyz^-1"} {
		if _, err := Resolve(reg, in); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Resolve(%q) err = %v, want ErrUnknownUnit", in, err)
		}
	}
}

func TestResolveUnknownInsideDerived(t *testing.T) {
	reg := registry.Default()
	if err := reg.RegisterDerived(registry.Derived{Symbol: "bogus", Composition: "xyz^2", Factor: 1}); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(reg, "bogus")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit from inside derived expansion", err)
	}
}

func TestResolveCyclicTable(t *testing.T) {
	reg := registry.Default()
	if err := reg.RegisterDerived(registry.Derived{Symbol: "ouro", Composition: "boros", Factor: 1}); err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterDerived(registry.Derived{Symbol: "boros", Composition: "ouro", Factor: 1}); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(reg, "ouro")
	if !errors.Is(err, ErrTableCycle) {
		t.Errorf("err = %v, want ErrTableCycle", err)
	}
}

func TestResolveVector(t *testing.T) {
	reg := registry.Default()

	t.Run("PrefixInvariance", func(t *testing.T) {
		km, err := Resolve(reg, "km")
		if err != nil {
			t.Fatal(err)
		}
		m, err := Resolve(reg, "m")
		if err != nil {
			t.Fatal(err)
		}
		if !km.Vector.Equal(m.Vector) {
			t.Errorf("dimension vector of km (%v) should equal m (%v)", km.Vector, m.Vector)
		}
	})

	t.Run("DerivedMatchesComposition", func(t *testing.T) {
		n, err := Resolve(reg, "N")
		if err != nil {
			t.Fatal(err)
		}
		composed, err := Resolve(reg, "kg m s^-2")
		if err != nil {
			t.Fatal(err)
		}
		if !n.Vector.Equal(composed.Vector) {
			t.Errorf("N vector %v != composition vector %v", n.Vector, composed.Vector)
		}
	})
}
