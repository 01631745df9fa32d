package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/statroll/internal/canonical"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/preset"
)

// NormalizeName trims surrounding whitespace and applies NFC, so names that
// look identical are stored under one key.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// record is the canonical form hashed into a preset's ID.
type record struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Method      string                `json:"method"`
	Constraints []constraint.Document `json:"constraints"`
}

func newRecord(p preset.Preset) record {
	docs := constraint.ToDocuments(p.Constraints)
	if docs == nil {
		docs = []constraint.Document{}
	}
	return record{
		Name:        NormalizeName(p.Name),
		Description: p.Description,
		Method:      string(p.Method),
		Constraints: docs,
	}
}

// presetID is the content-addressed identity of r.
func presetID(r record) (string, error) {
	return canonical.ID(canonical.DomainPreset, r)
}

// marshalConstraints converts documents to canonical JSON TEXT for storage.
func marshalConstraints(docs []constraint.Document) (string, error) {
	data, err := canonical.Encode(docs)
	if err != nil {
		return "", fmt.Errorf("marshal constraints: %w", err)
	}
	return string(data), nil
}

// unmarshalConstraints parses the constraints column back into typed
// constraints, validating every document.
func unmarshalConstraints(data string) ([]constraint.Constraint, error) {
	var docs []constraint.Document
	if err := json.Unmarshal([]byte(data), &docs); err != nil {
		return nil, fmt.Errorf("unmarshal constraints: %w", err)
	}
	cs, err := constraint.FromDocuments(docs)
	if err != nil {
		return nil, fmt.Errorf("unmarshal constraints: %w", err)
	}
	if cs == nil {
		cs = []constraint.Constraint{}
	}
	return cs, nil
}
