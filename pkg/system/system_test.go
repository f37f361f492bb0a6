package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
	"github.com/unitkit/unitkit-go/pkg/unit"
)

func TestNew(t *testing.T) {
	reg := registry.Default()

	t.Run("DefaultsToSIRepresentatives", func(t *testing.T) {
		sys, err := New(reg)
		require.NoError(t, err)
		assert.Equal(t, "kg", sys.Base(dimension.Mass))
		assert.Equal(t, "m", sys.Base(dimension.Length))
		assert.Equal(t, "s", sys.Base(dimension.Time))
		assert.Equal(t, "K", sys.Base(dimension.Temperature))
		assert.Equal(t, "delta_K", sys.Base(dimension.TemperatureDifference))
		assert.Equal(t, "radian", sys.Base(dimension.Angle))
	})

	t.Run("OverridesReplacePerDimension", func(t *testing.T) {
		sys, err := New(reg, "slug", "ft")
		require.NoError(t, err)
		assert.Equal(t, "slug", sys.Base(dimension.Mass))
		assert.Equal(t, "ft", sys.Base(dimension.Length))
		assert.Equal(t, "s", sys.Base(dimension.Time))
	})

	t.Run("DerivedOverrideRejected", func(t *testing.T) {
		_, err := New(reg, "N")
		assert.ErrorIs(t, err, ErrNotFundamentalUnit)
	})

	t.Run("UnknownOverrideRejected", func(t *testing.T) {
		_, err := New(reg, "cubit")
		var unknown *unit.UnknownUnitError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "cubit", unknown.Symbol)
	})

	t.Run("TwoUnitsForOneDimensionRejected", func(t *testing.T) {
		_, err := New(reg, "ft", "mi")
		assert.ErrorIs(t, err, ErrDuplicateDimensionType)
	})

	t.Run("RegistryWithoutRepresentativesRejected", func(t *testing.T) {
		_, err := New(registry.New())
		assert.ErrorIs(t, err, ErrInvalidUnitSystem)
	})
}

func TestFPS(t *testing.T) {
	reg := registry.Default()

	sys, err := FPS(reg)
	require.NoError(t, err)
	assert.Equal(t, "slug", sys.Base(dimension.Mass))
	assert.Equal(t, "ft", sys.Base(dimension.Length))
	assert.Equal(t, "s", sys.Base(dimension.Time))
	assert.Equal(t, "R", sys.Base(dimension.Temperature))
	assert.Equal(t, "delta_R", sys.Base(dimension.TemperatureDifference))
}

func TestUnit(t *testing.T) {
	reg := registry.Default()

	sys, err := SI(reg)
	require.NoError(t, err)

	t.Run("Force", func(t *testing.T) {
		var vec dimension.Vector
		vec[dimension.Mass] = 1
		vec[dimension.Length] = 1
		vec[dimension.Time] = -2
		assert.Equal(t, "kg m s^-2", sys.Unit(vec))
	})

	t.Run("FractionalExponent", func(t *testing.T) {
		var vec dimension.Vector
		vec[dimension.Length] = 0.5
		assert.Equal(t, "m^0.5", sys.Unit(vec))
	})

	t.Run("ZeroVectorIsDimensionless", func(t *testing.T) {
		assert.Equal(t, "", sys.Unit(dimension.Vector{}))
	})
}
