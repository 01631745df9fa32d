package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/dice"
)

// Scenario defines one deterministic rollout to run and check.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Method is the rolling method. Empty means STANDARD.
	Method string `yaml:"method,omitempty"`

	// Tolerance is the attempt budget. Zero means the default.
	Tolerance int `yaml:"tolerance,omitempty"`

	// Dice scripts every face the search will draw.
	Dice []int `yaml:"dice,omitempty"`

	// Seed selects a seeded random source instead of scripted dice.
	Seed *int64 `yaml:"seed,omitempty"`

	// Preset names a built-in preset whose constraints run before
	// Constraints.
	Preset string `yaml:"preset,omitempty"`

	// Constraints must all hold for a set to be accepted.
	Constraints []constraint.Document `yaml:"constraints,omitempty"`

	// RunID is a fixed run ID for golden comparison.
	// If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Expect describes the outcome the scenario asserts.
	Expect Expectation `yaml:"expect"`
}

// Expectation lists the outcome fields a scenario asserts. Nil fields are
// not checked.
type Expectation struct {
	Found    *bool `yaml:"found,omitempty"`
	Attempts *int  `yaml:"attempts,omitempty"`
	Scores   []int `yaml:"scores,omitempty"`
}

func (e Expectation) empty() bool {
	return e.Found == nil && e.Attempts == nil && e.Scores == nil
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches typos like "constraint:" vs "constraints:"
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Method != "" {
		if _, err := ability.ParseMethod(s.Method); err != nil {
			return fmt.Errorf("method: %w", err)
		}
	}

	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %d", s.Tolerance)
	}

	switch {
	case len(s.Dice) > 0 && s.Seed != nil:
		return fmt.Errorf("dice and seed are mutually exclusive")
	case len(s.Dice) == 0 && s.Seed == nil:
		return fmt.Errorf("one of dice or seed is required")
	}

	for i, face := range s.Dice {
		if !dice.ValidFace(face) {
			return fmt.Errorf("dice[%d]: %d is not a d%d face", i, face, dice.Sides)
		}
	}

	if _, err := constraint.FromDocuments(s.Constraints); err != nil {
		return err
	}

	if s.Expect.empty() {
		return fmt.Errorf("expect must set at least one of found, attempts, scores")
	}
	if s.Expect.Scores != nil && len(s.Expect.Scores) != ability.SetSize {
		return fmt.Errorf("expect.scores must list %d scores, got %d", ability.SetSize, len(s.Expect.Scores))
	}

	return nil
}

// method returns the scenario's rolling method.
func (s *Scenario) method() ability.Method {
	if s.Method == "" {
		return ability.Standard
	}
	return ability.Method(s.Method)
}
