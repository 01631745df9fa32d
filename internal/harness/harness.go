package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/dice"
	"github.com/roach88/statroll/internal/predicate"
	"github.com/roach88/statroll/internal/preset"
	"github.com/roach88/statroll/internal/rollout"
	"github.com/roach88/statroll/internal/testutil"
)

// Option configures a scenario run.
type Option func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithLogger routes the search's log lines to l. By default they are
// discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}

// Run executes a scenario and returns the result.
//
// A returned error means the scenario could not run at all (unknown preset,
// invalid constraint). Expectation failures, contract violations and an
// exhausted dice script are reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	cs, err := scenarioConstraints(scenario)
	if err != nil {
		return nil, err
	}

	src := scenarioSource(scenario)
	result := NewResult()

	searcher := rollout.New(src,
		rollout.WithLogger(cfg.logger),
		rollout.WithRunIDs(testutil.NewFixedRunIDGenerator(scenario.RunID)),
		rollout.WithObserver(func(a rollout.Attempt) {
			result.AddAttempt(a.Number, a.Set.Scores(), a.Accepted)
		}),
	)

	req := rollout.Request{
		Constraints: cs,
		Method:      scenario.method(),
		Tolerance:   scenario.Tolerance,
	}

	res, exhausted, err := search(searcher, req)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	if exhausted {
		result.Outcome = Outcome{Tolerance: effectiveTolerance(scenario.Tolerance), RunID: runID(scenario)}
		result.AddError(fmt.Sprintf("dice script exhausted after %d complete attempts", len(result.Trace)))
		return result, nil
	}

	result.Outcome = Outcome{
		Found:     res.Found,
		Attempts:  res.Attempts,
		Tolerance: res.Tolerance,
		RunID:     res.RunID,
	}
	if res.Set != nil {
		result.Outcome.Scores = res.Set.Scores()
	}

	checkContract(result, res, cs)
	checkExpectations(result, scenario.Expect)

	return result, nil
}

// search runs the searcher, converting a scripted-dice exhaustion panic into
// exhausted == true. Any other panic propagates.
func search(s *rollout.Searcher, req rollout.Request) (res rollout.Result, exhausted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, dice.ErrScriptExhausted) {
				exhausted = true
				return
			}
			panic(r)
		}
	}()
	res, err = s.Search(req)
	return res, false, err
}

func scenarioConstraints(s *Scenario) ([]constraint.Constraint, error) {
	cs, err := constraint.FromDocuments(s.Constraints)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.Preset == "" {
		return cs, nil
	}

	builtin, err := preset.Builtin()
	if err != nil {
		return nil, err
	}
	p, err := preset.Find(builtin, s.Preset)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return append(slices.Clone(p.Constraints), cs...), nil
}

func scenarioSource(s *Scenario) dice.Source {
	if s.Seed != nil {
		return dice.NewRand(*s.Seed)
	}
	return dice.NewScripted(s.Dice...)
}

func effectiveTolerance(t int) int {
	if t == 0 {
		return rollout.DefaultTolerance
	}
	return t
}

func runID(s *Scenario) string {
	return testutil.NewFixedRunIDGenerator(s.RunID).Generate()
}

// checkContract verifies the search invariants independently of the
// scenario's expectations.
func checkContract(result *Result, res rollout.Result, cs []constraint.Constraint) {
	if res.Found {
		if res.Set == nil {
			result.AddError("found result has no set")
			return
		}
		if res.Attempts < 1 || res.Attempts > res.Tolerance {
			result.AddError(fmt.Sprintf("found on attempt %d, outside 1..%d", res.Attempts, res.Tolerance))
		}
		accept, err := predicate.AllOf(cs...)
		if err != nil {
			result.AddError(fmt.Sprintf("recompile constraints: %v", err))
			return
		}
		if !accept(*res.Set) {
			result.AddError(fmt.Sprintf("accepted set %v violates the constraints", res.Set.Scores()))
		}
		if len(result.Trace) != res.Attempts {
			result.AddError(fmt.Sprintf("trace has %d attempts, result reports %d", len(result.Trace), res.Attempts))
		}
		return
	}

	if res.Set != nil {
		result.AddError("exhausted result carries a set")
	}
	if res.Attempts != res.Tolerance+1 {
		result.AddError(fmt.Sprintf("exhausted result reports %d attempts, want tolerance+1 = %d", res.Attempts, res.Tolerance+1))
	}
	if len(result.Trace) != res.Tolerance {
		result.AddError(fmt.Sprintf("trace has %d attempts, want %d", len(result.Trace), res.Tolerance))
	}
}

func checkExpectations(result *Result, want Expectation) {
	got := result.Outcome

	if want.Found != nil && *want.Found != got.Found {
		result.AddError(fmt.Sprintf("expected found=%t, got %t", *want.Found, got.Found))
	}
	if want.Attempts != nil && *want.Attempts != got.Attempts {
		result.AddError(fmt.Sprintf("expected attempts=%d, got %d", *want.Attempts, got.Attempts))
	}
	if want.Scores != nil && !slices.Equal(want.Scores, got.Scores) {
		result.AddError(fmt.Sprintf("expected scores=%v, got %v", want.Scores, got.Scores))
	}
}
