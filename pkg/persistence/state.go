package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/unitkit/unitkit-go/pkg/dimension"
	"github.com/unitkit/unitkit-go/pkg/registry"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// ExtensionState contains the runtime registry extensions.
type ExtensionState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Fundamentals are runtime-registered fundamental units.
	Fundamentals []FundamentalRecord `json:"fundamentals,omitempty"`

	// Derived are runtime-registered derived units.
	Derived []DerivedRecord `json:"derived,omitempty"`
}

// FundamentalRecord mirrors registry.Fundamental for JSON serialization.
type FundamentalRecord struct {
	Symbol    string  `json:"symbol"`
	Dimension string  `json:"dimension"`
	Factor    float64 `json:"factor"`
	Offset    float64 `json:"offset,omitempty"`
}

// DerivedRecord mirrors registry.Derived for JSON serialization.
type DerivedRecord struct {
	Symbol      string  `json:"symbol"`
	Composition string  `json:"composition"`
	Factor      float64 `json:"factor"`
}

// StateStore manages persistence of registry extensions to a JSON file.
// It is safe for concurrent use.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a state store backed by the given file path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Save persists the extension state to disk.
func (s *StateStore) Save(state *ExtensionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the extension state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *StateStore) Load() (*ExtensionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &ExtensionState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Apply replays the saved extensions into a registry. Symbols that are
// already present (for example after a table upgrade) are skipped.
func Apply(state *ExtensionState, reg *registry.Registry) error {
	if state == nil {
		return nil
	}
	for _, f := range state.Fundamentals {
		base, err := dimension.ParseBase(f.Dimension)
		if err != nil {
			return fmt.Errorf("saved fundamental %q: %w", f.Symbol, err)
		}
		err = reg.RegisterFundamental(registry.Fundamental{
			Symbol: f.Symbol,
			Base:   base,
			Factor: f.Factor,
			Offset: f.Offset,
		})
		if err != nil && !errors.Is(err, registry.ErrDuplicateUnit) {
			return err
		}
	}
	for _, d := range state.Derived {
		err := reg.RegisterDerived(registry.Derived{
			Symbol:      d.Symbol,
			Composition: d.Composition,
			Factor:      d.Factor,
		})
		if err != nil && !errors.Is(err, registry.ErrDuplicateUnit) {
			return err
		}
	}
	return nil
}

// Record appends a fundamental registration to the state.
func (state *ExtensionState) Record(f registry.Fundamental) {
	state.Fundamentals = append(state.Fundamentals, FundamentalRecord{
		Symbol:    f.Symbol,
		Dimension: f.Base.String(),
		Factor:    f.Factor,
		Offset:    f.Offset,
	})
}

// RecordDerived appends a derived registration to the state.
func (state *ExtensionState) RecordDerived(d registry.Derived) {
	state.Derived = append(state.Derived, DerivedRecord{
		Symbol:      d.Symbol,
		Composition: d.Composition,
		Factor:      d.Factor,
	})
}
