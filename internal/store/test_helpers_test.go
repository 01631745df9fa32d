package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestPreset creates a preset with one net score constraint.
func createTestPreset(name string, netScore int) Preset {
	return Preset{
		Name:        name,
		Description: "test preset " + name,
		Method:      ability.Standard,
		Constraints: []constraint.Constraint{
			constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: netScore},
		},
	}
}
