package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write table file: %v", err)
	}
	return path
}

func TestValidateGoodTable(t *testing.T) {
	path := writeTableFile(t, `
tableVersion: "1.0"
fundamentals:
  - symbol: m
    dimension: length
    factor: 1
  - symbol: s
    dimension: time
    factor: 1
derived:
  - symbol: Hz
    composition: s^-1
    factor: 1
quantities:
  velocity: m s^-1
`)

	if err := RunValidate(path); err != nil {
		t.Errorf("RunValidate failed on a good table: %v", err)
	}
}

func TestValidateMissingFile(t *testing.T) {
	if err := RunValidate(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("RunValidate should fail for a missing file")
	}
}

func TestValidateBadVersion(t *testing.T) {
	path := writeTableFile(t, `
tableVersion: "2.0"
fundamentals:
  - symbol: m
    dimension: length
    factor: 1
`)

	if err := RunValidate(path); err == nil {
		t.Error("RunValidate should fail for an incompatible table version")
	}
}

func TestValidateUnknownCompositionSymbol(t *testing.T) {
	path := writeTableFile(t, `
tableVersion: "1.0"
fundamentals:
  - symbol: m
    dimension: length
    factor: 1
derived:
  - symbol: N
    composition: kg m s^-2
    factor: 1
`)

	if err := RunValidate(path); err == nil {
		t.Error("RunValidate should fail when a composition references unknown symbols")
	}
}
