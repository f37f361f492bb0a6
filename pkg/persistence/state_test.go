package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
)

func TestStateStore(t *testing.T) {
	t.Run("NewStateStore", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))
		if store == nil {
			t.Fatal("NewStateStore() returned nil")
		}
	})

	t.Run("SaveAndLoadEmpty", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		state := &ExtensionState{
			Version: StateVersion,
			SavedAt: time.Now(),
		}

		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if got.Version != StateVersion {
			t.Errorf("Version = %d, want %d", got.Version, StateVersion)
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		// Should return nil (empty state) for non-existent file
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("ExtensionsRoundTrip", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		state := &ExtensionState{}
		state.Record(registry.Fundamental{
			Symbol: "furlong",
			Base:   dimension.Length,
			Factor: 201.168,
		})
		state.RecordDerived(registry.Derived{
			Symbol:      "firkin",
			Composition: "kg",
			Factor:      40.91481,
		})

		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if len(got.Fundamentals) != 1 {
			t.Fatalf("len(Fundamentals) = %d, want 1", len(got.Fundamentals))
		}
		if got.Fundamentals[0].Symbol != "furlong" {
			t.Errorf("Fundamentals[0].Symbol = %q, want %q", got.Fundamentals[0].Symbol, "furlong")
		}
		if got.Fundamentals[0].Dimension != "length" {
			t.Errorf("Fundamentals[0].Dimension = %q, want %q", got.Fundamentals[0].Dimension, "length")
		}
		if len(got.Derived) != 1 {
			t.Fatalf("len(Derived) = %d, want 1", len(got.Derived))
		}
		if got.Derived[0].Composition != "kg" {
			t.Errorf("Derived[0].Composition = %q, want %q", got.Derived[0].Composition, "kg")
		}
	})

	t.Run("SaveCreatesParentDirectory", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nested", "deeper", "state.json"))

		if err := store.Save(&ExtensionState{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if got, err := store.Load(); err != nil || got == nil {
			t.Fatalf("Load() after nested Save = (%v, %v)", got, err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		if err := store.Save(&ExtensionState{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() after Clear error = %v", err)
		}
		if got != nil {
			t.Error("Load() after Clear should return nil state")
		}

		// Clearing again is a no-op.
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("NilStateIsNoop", func(t *testing.T) {
		reg := registry.Default()
		if err := Apply(nil, reg); err != nil {
			t.Fatalf("Apply(nil) error = %v", err)
		}
	})

	t.Run("ReplaysExtensions", func(t *testing.T) {
		reg := registry.Default()

		state := &ExtensionState{
			Fundamentals: []FundamentalRecord{
				{Symbol: "furlong", Dimension: "length", Factor: 201.168},
			},
			Derived: []DerivedRecord{
				{Symbol: "fortnightspeed", Composition: "furlong s^-1", Factor: 1},
			},
		}

		if err := Apply(state, reg); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}

		f, ok := reg.Fundamental("furlong")
		if !ok {
			t.Fatal("furlong was not registered")
		}
		if f.Factor != 201.168 {
			t.Errorf("furlong factor = %v, want 201.168", f.Factor)
		}
		if _, ok := reg.Derived("fortnightspeed"); !ok {
			t.Error("fortnightspeed was not registered")
		}
	})

	t.Run("SkipsAlreadyPresentSymbols", func(t *testing.T) {
		reg := registry.Default()

		state := &ExtensionState{
			Fundamentals: []FundamentalRecord{
				{Symbol: "m", Dimension: "length", Factor: 2},
			},
		}

		if err := Apply(state, reg); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}

		// The built-in definition wins.
		f, ok := reg.Fundamental("m")
		if !ok {
			t.Fatal("m missing from registry")
		}
		if f.Factor != 1 {
			t.Errorf("m factor = %v, want 1", f.Factor)
		}
	})

	t.Run("RejectsUnknownDimension", func(t *testing.T) {
		reg := registry.Default()

		state := &ExtensionState{
			Fundamentals: []FundamentalRecord{
				{Symbol: "q", Dimension: "charm", Factor: 1},
			},
		}

		if err := Apply(state, reg); err == nil {
			t.Error("Apply() should fail for an unknown dimension name")
		}
	})
}
