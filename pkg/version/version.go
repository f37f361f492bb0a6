// Package version provides unit-table format version parsing and
// comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the table format version understood by this library.
const Current = "1.0"

// TableVersion represents a parsed "major.minor" table format version.
type TableVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (TableVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return TableVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return TableVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return TableVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return TableVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v TableVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major
// version. Minor revisions only add table entries.
func (v TableVersion) Compatible(other TableVersion) bool {
	return v.Major == other.Major
}
