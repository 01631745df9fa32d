package constraint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a constraint file:
//
//	constraints:
//	  - kind: SCORE_CONSTRAINT
//	    num_scores_limit: AT_LEAST
//	    num_scores: 2
//	    score_limit: AT_LEAST
//	    score: 15
//	  - kind: NET_MOD_CONSTRAINT
//	    limit: AT_LEAST
//	    value: 2
type File struct {
	Constraints []Document `yaml:"constraints"`
}

// LoadFile reads and validates a YAML constraint file. Unknown fields are
// rejected so typos surface instead of silently dropping a requirement.
func LoadFile(path string) ([]Constraint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraint file: %w", err)
	}
	return Decode(data)
}

// Decode parses YAML constraint file contents. An empty document yields no
// constraints.
func Decode(data []byte) ([]Constraint, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Code: CodeInvalidFile, Message: err.Error()}
	}
	return FromDocuments(f.Constraints)
}

// Encode renders cs as YAML constraint file contents.
func Encode(cs []Constraint) ([]byte, error) {
	return yaml.Marshal(File{Constraints: ToDocuments(cs)})
}
