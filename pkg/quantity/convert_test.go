package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/system"
)

func TestTo(t *testing.T) {
	reg := registry.Default()

	t.Run("LengthScales", func(t *testing.T) {
		q := mustNew(t, reg, 1, "km")
		ft, err := q.To("ft")
		require.NoError(t, err)
		assert.InDelta(t, 1000/0.3048, ft.Value(), 1e-9)
		assert.Equal(t, "ft", ft.Unit().Name())
	})

	t.Run("DerivedTarget", func(t *testing.T) {
		q := mustNew(t, reg, 101325, "Pa")
		atm, err := q.To("atm")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, atm.Value(), 1e-12)
	})

	t.Run("IncompatibleRejected", func(t *testing.T) {
		q := mustNew(t, reg, 1, "Hz")
		_, err := q.To("radian s^-1")
		assert.ErrorIs(t, err, ErrIncompatibleDimensions,
			"frequency and angular velocity differ by an angle dimension")
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		q := mustNew(t, reg, 1, "m")
		_, err := q.To("blorp")
		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	reg := registry.Default()

	pairs := [][2]string{
		{"m", "ft"},
		{"kg", "lb"},
		{"s", "hr"},
		{"Pa", "psi"},
		{"J", "Btu"},
		{"mph", "m s^-1"},
		{"K", "R"},
	}

	for _, pair := range pairs {
		t.Run(pair[0]+"_"+pair[1], func(t *testing.T) {
			q := mustNew(t, reg, 1, pair[0])
			there, err := q.To(pair[1])
			require.NoError(t, err)
			back, err := there.To(pair[0])
			require.NoError(t, err)
			assert.InDelta(t, 1.0, back.Value(), 1e-9)
		})
	}
}

func TestTemperatureConversion(t *testing.T) {
	reg := registry.Default()

	t.Run("OffsetContract", func(t *testing.T) {
		freezing := mustNew(t, reg, 0, "C")
		k, err := freezing.To("K")
		require.NoError(t, err)
		assert.Equal(t, 273.15, k.Value())
	})

	t.Run("FahrenheitToCelsius", func(t *testing.T) {
		boiling := mustNew(t, reg, 212, "F")
		c, err := boiling.To("C")
		require.NoError(t, err)
		assert.InDelta(t, 100.0, c.Value(), 1e-9)
	})

	t.Run("DifferenceConvertsByScaleOnly", func(t *testing.T) {
		a := mustNew(t, reg, 2, "K")
		b := mustNew(t, reg, 1, "K")

		span, err := a.Sub(b)
		require.NoError(t, err)

		c, err := span.To("C")
		require.NoError(t, err)
		assert.Equal(t, 1.0, c.Value(), "a 1 K span is a 1 C span, not 274.15")
		assert.Equal(t, "delta_C", c.Unit().Name())
	})

	t.Run("DeltaToDelta", func(t *testing.T) {
		span := mustNew(t, reg, 9, "delta_F")
		k, err := span.To("delta_K")
		require.NoError(t, err)
		assert.InDelta(t, 5.0, k.Value(), 1e-12)
	})

	t.Run("AbsoluteToDeltaDropsOffset", func(t *testing.T) {
		temp := mustNew(t, reg, 10, "C")
		span, err := temp.To("delta_K")
		require.NoError(t, err)
		assert.InDelta(t, 10.0, span.Value(), 1e-12)
		assert.Equal(t, "delta_K", span.Unit().Name())
	})
}

func TestToSystem(t *testing.T) {
	reg := registry.Default()

	t.Run("FootPoundSecond", func(t *testing.T) {
		q := mustNew(t, reg, 10, "kg ft s")

		fps, err := system.FPS(reg)
		require.NoError(t, err)

		converted, err := q.ToSystem(fps)
		require.NoError(t, err)
		assert.Equal(t, "slug ft s", converted.Unit().Name())
		assert.InDelta(t, 0.6852176585679174, converted.Value(), 1e-12)
	})

	t.Run("SIIsIdentityForSIUnits", func(t *testing.T) {
		q := mustNew(t, reg, 5, "kg m s^-2")

		si, err := system.SI(reg)
		require.NoError(t, err)

		converted, err := q.ToSystem(si)
		require.NoError(t, err)
		assert.Equal(t, 5.0, converted.Value())
		assert.Equal(t, "kg m s^-2", converted.Unit().Name())
	})

	t.Run("DimensionlessStaysEmpty", func(t *testing.T) {
		q := mustNew(t, reg, 4, "")

		si, err := system.SI(reg)
		require.NoError(t, err)

		converted, err := q.ToSystem(si)
		require.NoError(t, err)
		assert.Equal(t, 4.0, converted.Value())
		assert.True(t, converted.Dimensionless())
	})
}

func TestCompare(t *testing.T) {
	reg := registry.Default()

	t.Run("CrossUnit", func(t *testing.T) {
		mile := mustNew(t, reg, 1, "mi")
		km := mustNew(t, reg, 1, "km")

		greater, err := mile.Greater(km)
		require.NoError(t, err)
		assert.True(t, greater)

		less, err := km.Less(mile)
		require.NoError(t, err)
		assert.True(t, less)
	})

	t.Run("EqualViaSI", func(t *testing.T) {
		a := mustNew(t, reg, 1000, "m")
		b := mustNew(t, reg, 1, "km")

		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("AbsoluteTemperaturesCompareInSI", func(t *testing.T) {
		c := mustNew(t, reg, 0, "C")
		k := mustNew(t, reg, 270, "K")

		greater, err := c.Greater(k)
		require.NoError(t, err)
		assert.True(t, greater, "0 C is 273.15 K")
	})

	t.Run("MismatchedVectorsRejected", func(t *testing.T) {
		m := mustNew(t, reg, 1, "m")
		s := mustNew(t, reg, 1, "s")

		_, err := m.Less(s)
		assert.ErrorIs(t, err, ErrIncompatibleDimensions)
	})

	t.Run("AbsoluteVsDeltaRejected", func(t *testing.T) {
		k := mustNew(t, reg, 1, "K")
		dk := mustNew(t, reg, 1, "delta_K")

		_, err := k.Less(dk)
		assert.ErrorIs(t, err, ErrIncompatibleDimensions)
	})

	t.Run("DimensionlessAgainstRawNumber", func(t *testing.T) {
		q := mustNew(t, reg, 0.5, "")

		c, err := q.CompareFloat(0.75)
		require.NoError(t, err)
		assert.Equal(t, -1, c)

		c, err = q.CompareFloat(0.5)
		require.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("DimensionedAgainstRawNumberRejected", func(t *testing.T) {
		q := mustNew(t, reg, 1, "m")
		_, err := q.CompareFloat(1)
		assert.ErrorIs(t, err, ErrIncompatibleDimensions)
	})
}
