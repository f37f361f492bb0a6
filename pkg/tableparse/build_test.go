package tableparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitkit/unitkit-go/pkg/unit"
)

const minimalTable = `
tableVersion: "1.0"
fundamentals:
  - symbol: m
    dimension: length
    factor: 1
  - symbol: s
    dimension: time
    factor: 1
  - symbol: g
    dimension: mass
    factor: 0.001
derived:
  - symbol: N
    composition: kg m s^-2
    factor: 1
quantities:
  velocity: m s^-1
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(minimalTable))
	require.NoError(t, err)

	assert.Equal(t, "1.0", table.TableVersion)
	require.Len(t, table.Fundamentals, 3)
	assert.Equal(t, "m", table.Fundamentals[0].Symbol)
	assert.Equal(t, "length", table.Fundamentals[0].Dimension)
	assert.Equal(t, 0.001, table.Fundamentals[2].Factor)
	require.Len(t, table.Derived, 1)
	assert.Equal(t, "kg m s^-2", table.Derived[0].Composition)
	assert.Equal(t, "m s^-1", table.Quantities["velocity"])
}

func TestParseTableInvalidYAML(t *testing.T) {
	_, err := ParseTable([]byte("tableVersion: [unclosed"))
	assert.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTable), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", table.TableVersion)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	t.Run("RegistersAndResolves", func(t *testing.T) {
		table, err := ParseTable([]byte(minimalTable))
		require.NoError(t, err)

		reg, err := Build(table)
		require.NoError(t, err)

		res, err := unit.Resolve(reg, "N")
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Scale)

		expr, ok := reg.Quantity("velocity")
		assert.True(t, ok)
		assert.Equal(t, "m s^-1", expr)
	})

	t.Run("IncompatibleVersion", func(t *testing.T) {
		_, err := Build(&RawTable{TableVersion: "2.0"})
		assert.Error(t, err)
	})

	t.Run("MalformedVersion", func(t *testing.T) {
		_, err := Build(&RawTable{TableVersion: "one"})
		assert.Error(t, err)
	})

	t.Run("UnknownDimension", func(t *testing.T) {
		_, err := Build(&RawTable{
			TableVersion: "1.0",
			Fundamentals: []RawFundamental{
				{Symbol: "q", Dimension: "charm", Factor: 1},
			},
		})
		assert.Error(t, err)
	})

	t.Run("UnknownCompositionSymbol", func(t *testing.T) {
		_, err := Build(&RawTable{
			TableVersion: "1.0",
			Derived: []RawDerived{
				{Symbol: "N", Composition: "kg m s^-2", Factor: 1},
			},
		})
		assert.ErrorIs(t, err, unit.ErrUnknownUnit)
	})

	t.Run("CyclicDerived", func(t *testing.T) {
		_, err := Build(&RawTable{
			TableVersion: "1.0",
			Derived: []RawDerived{
				{Symbol: "a", Composition: "b", Factor: 1},
				{Symbol: "b", Composition: "a", Factor: 1},
			},
		})
		assert.ErrorIs(t, err, unit.ErrTableCycle)
	})

	t.Run("UnresolvableQuantity", func(t *testing.T) {
		_, err := Build(&RawTable{
			TableVersion: "1.0",
			Quantities:   map[string]string{"length": "cubit"},
		})
		assert.ErrorIs(t, err, unit.ErrUnknownUnit)
	})

	t.Run("CustomPrefixes", func(t *testing.T) {
		table := &RawTable{
			TableVersion: "1.0",
			Prefixes:     map[string]float64{"k": 1000},
			Fundamentals: []RawFundamental{
				{Symbol: "m", Dimension: "length", Factor: 1},
			},
		}
		reg, err := Build(table)
		require.NoError(t, err)

		res, err := unit.Resolve(reg, "km")
		require.NoError(t, err)
		assert.Equal(t, 1000.0, res.Scale)
	})
}
