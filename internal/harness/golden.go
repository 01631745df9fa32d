package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/statroll/internal/canonical"
)

// TraceSnapshot captures the complete trace for a scenario execution.
// Serialized as canonical JSON for byte-exact comparison.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	RunID        string       `json:"run_id"`
	Method       string       `json:"method"`
	Tolerance    int          `json:"tolerance"`
	Found        bool         `json:"found"`
	Attempts     int          `json:"attempts"`
	Trace        []TraceEvent `json:"trace"`
}

// Snapshot renders a scenario's result as canonical JSON.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := result.Trace
	if trace == nil {
		trace = []TraceEvent{}
	}
	return canonical.Encode(TraceSnapshot{
		ScenarioName: scenario.Name,
		RunID:        result.Outcome.RunID,
		Method:       string(scenario.method()),
		Tolerance:    result.Outcome.Tolerance,
		Found:        result.Outcome.Found,
		Attempts:     result.Outcome.Attempts,
		Trace:        trace,
	})
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against the scenario's golden
// file without re-running it.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
