package rollout

import (
	"log/slog"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/dice"
	"github.com/roach88/statroll/internal/predicate"
)

// DefaultTolerance is the attempt budget used when a request leaves
// Tolerance at zero. It is a stop condition only; it says nothing about the
// probability of success.
const DefaultTolerance = 500

// Request describes one search.
type Request struct {
	// Constraints must all hold for a set to be accepted. Empty accepts the
	// first set rolled.
	Constraints []constraint.Constraint

	// Method selects how each ability score is rolled.
	Method ability.Method

	// Tolerance bounds the number of attempts. Zero means the searcher's
	// default; negative values are rejected.
	Tolerance int
}

// Result is the outcome of a search.
type Result struct {
	// Set is the accepted set, or nil when the search was exhausted.
	Set *ability.Set

	// Attempts is the 1-based attempt that succeeded, or Tolerance+1 when no
	// attempt did.
	Attempts int

	// Found reports whether Set is present.
	Found bool

	// Tolerance is the budget the search actually ran with.
	Tolerance int

	// RunID correlates log lines and output for this search.
	RunID string
}

// Attempt describes one sampled set, passed to an Observer.
type Attempt struct {
	Number   int
	Set      ability.Set
	Accepted bool
}

// Observer is notified after every attempt, in order.
type Observer func(Attempt)

// Searcher runs rejection-sampling searches against one dice source.
//
// A Searcher is not safe for concurrent use: its source is consumed in order.
type Searcher struct {
	src       dice.Source
	runIDs    RunIDGenerator
	logger    *slog.Logger
	observer  Observer
	tolerance int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = l
	}
}

// WithRunIDs sets the run ID generator. Default: UUIDv7Generator.
func WithRunIDs(g RunIDGenerator) Option {
	return func(s *Searcher) {
		s.runIDs = g
	}
}

// WithObserver registers a callback invoked after every attempt.
func WithObserver(o Observer) Option {
	return func(s *Searcher) {
		s.observer = o
	}
}

// WithDefaultTolerance replaces DefaultTolerance for requests that leave
// Tolerance at zero. Non-positive values are ignored.
func WithDefaultTolerance(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.tolerance = n
		}
	}
}

// New creates a Searcher drawing dice from src.
func New(src dice.Source, opts ...Option) *Searcher {
	s := &Searcher{
		src:       src,
		runIDs:    UUIDv7Generator{},
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Search runs req against src with default options.
func Search(req Request, src dice.Source) (Result, error) {
	return New(src).Search(req)
}

// Search validates req, compiles its predicate once, and samples up to
// Tolerance sets. Validation failures return a *ValidationError before any
// die is rolled. Exhaustion returns Found == false and a nil error.
func (s *Searcher) Search(req Request) (Result, error) {
	tolerance := req.Tolerance
	if tolerance < 0 {
		return Result{}, NewToleranceError(tolerance)
	}
	if tolerance == 0 {
		tolerance = s.tolerance
	}

	roll, err := req.Method.Roller()
	if err != nil {
		return Result{}, &ValidationError{Code: ErrCodeUnknownMethod, Message: "invalid rolling method", Err: err}
	}

	accept, err := predicate.AllOf(req.Constraints...)
	if err != nil {
		return Result{}, &ValidationError{Code: ErrCodeInvalidConstraint, Message: "invalid constraint", Err: err}
	}

	runID := s.runIDs.Generate()
	log := s.logger.With("run_id", runID)
	log.Debug("rollout starting",
		"method", req.Method,
		"constraints", len(req.Constraints),
		"tolerance", tolerance,
	)

	for attempt := 1; attempt <= tolerance; attempt++ {
		set := rollSet(roll, s.src)
		accepted := accept(set)

		if s.observer != nil {
			s.observer(Attempt{Number: attempt, Set: set, Accepted: accepted})
		}

		if accepted {
			log.Info("rollout found", "attempts", attempt, "scores", set.Scores())
			return Result{
				Set:       &set,
				Attempts:  attempt,
				Found:     true,
				Tolerance: tolerance,
				RunID:     runID,
			}, nil
		}
		log.Debug("attempt rejected", "attempt", attempt, "scores", set.Scores())
	}

	log.Info("rollout exhausted", "tolerance", tolerance)
	return Result{
		Attempts:  tolerance + 1,
		Tolerance: tolerance,
		RunID:     runID,
	}, nil
}

// rollSet draws six independent scores.
func rollSet(roll ability.RollFunc, src dice.Source) ability.Set {
	var set ability.Set
	for i := range set {
		set[i] = roll(src)
	}
	return set
}
