package tableparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawTable represents a complete unit table loaded from YAML.
type RawTable struct {
	// TableVersion is the "major.minor" table format version.
	TableVersion string `yaml:"tableVersion"`

	// Prefixes maps multiplier prefix symbols to scale factors.
	// When empty, the standard SI prefix table applies.
	Prefixes map[string]float64 `yaml:"prefixes,omitempty"`

	// Fundamentals are the directly defined units.
	Fundamentals []RawFundamental `yaml:"fundamentals"`

	// Derived are units defined by composition.
	Derived []RawDerived `yaml:"derived,omitempty"`

	// Quantities maps quantity names to unit expressions.
	Quantities map[string]string `yaml:"quantities,omitempty"`
}

// RawFundamental is a fundamental unit definition.
type RawFundamental struct {
	// Symbol is the unit symbol, e.g. "m".
	Symbol string `yaml:"symbol"`

	// Dimension is the base dimension name, e.g. "length" or
	// "temperature difference".
	Dimension string `yaml:"dimension"`

	// Factor is the multiplicative SI factor.
	Factor float64 `yaml:"factor"`

	// Offset is the additive SI offset; nonzero only for absolute
	// temperature units.
	Offset float64 `yaml:"offset,omitempty"`
}

// RawDerived is a derived unit definition.
type RawDerived struct {
	// Symbol is the unit symbol, e.g. "N".
	Symbol string `yaml:"symbol"`

	// Composition is the compound unit expression, e.g. "kg m s^-2".
	Composition string `yaml:"composition"`

	// Factor is the multiplicative factor applied to the composition.
	Factor float64 `yaml:"factor"`
}

// ParseTable parses a unit table from YAML bytes.
func ParseTable(data []byte) (*RawTable, error) {
	var table RawTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing unit table: %w", err)
	}
	return &table, nil
}

// LoadTable loads and parses a unit table from a file.
func LoadTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}
