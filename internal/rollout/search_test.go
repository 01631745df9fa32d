package rollout

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/dice"
	"github.com/roach88/statroll/internal/predicate"
	"github.com/roach88/statroll/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	colvilleClassic = constraint.ScoreConstraint{
		NumScoresLimit: constraint.AtLeast,
		NumScores:      2,
		ScoreLimit:     constraint.AtLeast,
		Score:          15,
	}
	neoColville = constraint.NetModConstraint{Limit: constraint.AtLeast, Value: 2}
	mercer      = constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: 70}
	mercerPlus  = constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: 75}
	impossible  = constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: 200}
)

// quiet returns a searcher that logs nowhere and tags runs with a fixed ID.
func quiet(src dice.Source, opts ...Option) *Searcher {
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		WithRunIDs(testutil.NewFixedRunIDGenerator("run-test")),
	}
	return New(src, append(base, opts...)...)
}

// repeat returns n copies of face.
func repeat(face, n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = face
	}
	return faces
}

func TestSearchEmptyConstraintsAcceptsFirstSet(t *testing.T) {
	faces := map[ability.Method]int{
		ability.Standard:  24,
		ability.Classic:   18,
		ability.Augmented: 12,
	}

	for method, n := range faces {
		t.Run(string(method), func(t *testing.T) {
			src := dice.NewScripted(repeat(3, n)...)

			res, err := quiet(src).Search(Request{Method: method})
			require.NoError(t, err)

			assert.True(t, res.Found)
			assert.Equal(t, 1, res.Attempts)
			require.NotNil(t, res.Set)
			assert.Equal(t, 0, src.Remaining(), "exactly one set should be drawn")
			assert.Equal(t, "run-test", res.RunID)
		})
	}
}

func TestSearchSucceedsOnLaterAttempt(t *testing.T) {
	// First set is all ones (net score 18), second all sixes (net score 108).
	faces := append(repeat(1, 18), repeat(6, 18)...)
	src := dice.NewScripted(faces...)

	var seen []Attempt
	s := quiet(src, WithObserver(func(a Attempt) { seen = append(seen, a) }))

	res, err := s.Search(Request{
		Constraints: []constraint.Constraint{mercer},
		Method:      ability.Classic,
		Tolerance:   5,
	})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 5, res.Tolerance)
	require.NotNil(t, res.Set)
	assert.Equal(t, []int{18, 18, 18, 18, 18, 18}, res.Set.Scores())

	require.Len(t, seen, 2)
	assert.Equal(t, 1, seen[0].Number)
	assert.False(t, seen[0].Accepted)
	assert.Equal(t, 2, seen[1].Number)
	assert.True(t, seen[1].Accepted)
}

func TestSearchExhaustionReportsTolerancePlusOne(t *testing.T) {
	for _, tolerance := range []int{1, 3, 10} {
		res, err := quiet(dice.NewRand(7)).Search(Request{
			Constraints: []constraint.Constraint{impossible},
			Method:      ability.Standard,
			Tolerance:   tolerance,
		})
		require.NoError(t, err)

		assert.False(t, res.Found)
		assert.Nil(t, res.Set)
		assert.Equal(t, tolerance+1, res.Attempts)
	}
}

func TestSearchZeroToleranceUsesDefault(t *testing.T) {
	var attempts int
	s := quiet(dice.NewRand(1), WithObserver(func(Attempt) { attempts++ }))

	res, err := s.Search(Request{
		Constraints: []constraint.Constraint{impossible},
		Method:      ability.Classic,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultTolerance, res.Tolerance)
	assert.Equal(t, DefaultTolerance+1, res.Attempts)
	assert.Equal(t, DefaultTolerance, attempts)
}

func TestSearchWithDefaultTolerance(t *testing.T) {
	res, err := quiet(dice.NewRand(1), WithDefaultTolerance(4)).Search(Request{
		Constraints: []constraint.Constraint{impossible},
		Method:      ability.Classic,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Attempts)

	// An explicit request tolerance still wins.
	res, err = quiet(dice.NewRand(1), WithDefaultTolerance(4)).Search(Request{
		Constraints: []constraint.Constraint{impossible},
		Method:      ability.Classic,
		Tolerance:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
}

func TestSearchRejectsBadRequestsBeforeRolling(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code ValidationErrorCode
	}{
		{
			name: "negative tolerance",
			req:  Request{Method: ability.Standard, Tolerance: -1},
			code: ErrCodeInvalidTolerance,
		},
		{
			name: "unknown method",
			req:  Request{Method: "HEROIC"},
			code: ErrCodeUnknownMethod,
		},
		{
			name: "unknown limit",
			req: Request{
				Method:      ability.Standard,
				Constraints: []constraint.Constraint{constraint.NetModConstraint{Limit: "ABOUT", Value: 2}},
			},
			code: ErrCodeInvalidConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An empty script panics on the first roll.
			src := dice.NewScripted()

			_, err := quiet(src).Search(tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.code, ValidationCode(err))
		})
	}
}

func TestValidationErrorUnwraps(t *testing.T) {
	_, err := quiet(dice.NewScripted()).Search(Request{Method: "HEROIC"})
	assert.True(t, errors.Is(err, ability.ErrUnknownMethod))

	_, err = quiet(dice.NewScripted()).Search(Request{
		Method:      ability.Standard,
		Constraints: []constraint.Constraint{constraint.NetScoreConstraint{Limit: "NEAR", Value: 70}},
	})
	assert.True(t, predicate.IsCompileError(err))
}

func TestSearchPresetsWithSeededDice(t *testing.T) {
	tests := []struct {
		name   string
		method ability.Method
		cs     []constraint.Constraint
	}{
		{"colville classic", ability.Standard, []constraint.Constraint{colvilleClassic}},
		{"neo colville", ability.Standard, []constraint.Constraint{neoColville}},
		{"mercer", ability.Standard, []constraint.Constraint{mercer}},
		{"mercer plus", ability.Standard, []constraint.Constraint{mercerPlus}},
		{"mercer classic", ability.Classic, []constraint.Constraint{mercer}},
		{"neo colville augmented", ability.Augmented, []constraint.Constraint{neoColville}},
		{"combined", ability.Standard, []constraint.Constraint{colvilleClassic, mercer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := quiet(dice.NewRand(42)).Search(Request{
				Constraints: tt.cs,
				Method:      tt.method,
			})
			require.NoError(t, err)
			require.True(t, res.Found, "expected a set within %d attempts", DefaultTolerance)
			assert.GreaterOrEqual(t, res.Attempts, 1)
			assert.LessOrEqual(t, res.Attempts, DefaultTolerance)

			accept, err := predicate.AllOf(tt.cs...)
			require.NoError(t, err)
			assert.True(t, accept(*res.Set), "returned set must satisfy every constraint")
		})
	}
}

func TestSearchIsReproducibleForSeed(t *testing.T) {
	req := Request{Constraints: []constraint.Constraint{mercerPlus}, Method: ability.Standard}

	a, err := quiet(dice.NewRand(99)).Search(req)
	require.NoError(t, err)
	b, err := quiet(dice.NewRand(99)).Search(req)
	require.NoError(t, err)

	assert.Equal(t, a.Attempts, b.Attempts)
	assert.Equal(t, a.Set, b.Set)
}

func TestAugmentedSetsNeverFallBelowEight(t *testing.T) {
	var low int
	s := quiet(dice.NewRand(3), WithObserver(func(a Attempt) {
		for _, score := range a.Set.Scores() {
			if score < 8 {
				low++
			}
		}
	}))

	_, err := s.Search(Request{
		Constraints: []constraint.Constraint{impossible},
		Method:      ability.Augmented,
		Tolerance:   50,
	})
	require.NoError(t, err)
	assert.Zero(t, low)
}

func TestSearchLogsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(dice.NewScripted(append(repeat(1, 18), repeat(6, 18)...)...),
		WithLogger(logger),
		WithRunIDs(NewFixedGenerator("run-abc")),
	)
	_, err := s.Search(Request{
		Constraints: []constraint.Constraint{mercer},
		Method:      ability.Classic,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run_id=run-abc")
	assert.Contains(t, out, "attempt rejected")
	assert.Contains(t, out, "rollout found")
}

func TestPackageSearch(t *testing.T) {
	res, err := Search(Request{Method: ability.Classic}, dice.NewScripted(repeat(4, 18)...))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{12, 12, 12, 12, 12, 12}, res.Set.Scores())
	assert.NotEmpty(t, res.RunID)
}
