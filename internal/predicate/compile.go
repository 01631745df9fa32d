package predicate

import (
	"fmt"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
)

// Predicate is a compiled test over one rolled set.
type Predicate func(s ability.Set) bool

// Always accepts every set.
func Always(ability.Set) bool { return true }

// Never rejects every set.
func Never(ability.Set) bool { return false }

// Compile turns one constraint into a Predicate.
//
// Both value and pointer forms of the three variants are accepted. Anything
// else, including nil, fails with CodeUnknownConstraint.
func Compile(c constraint.Constraint) (Predicate, error) {
	switch con := c.(type) {
	case constraint.ScoreConstraint:
		return compileScore(con)
	case *constraint.ScoreConstraint:
		if con == nil {
			return nil, unknownConstraint(c)
		}
		return compileScore(*con)
	case constraint.NetModConstraint:
		return compileTotal("limit", con.Limit, con.Value, NetMod)
	case *constraint.NetModConstraint:
		if con == nil {
			return nil, unknownConstraint(c)
		}
		return compileTotal("limit", con.Limit, con.Value, NetMod)
	case constraint.NetScoreConstraint:
		return compileTotal("limit", con.Limit, con.Value, NetScore)
	case *constraint.NetScoreConstraint:
		if con == nil {
			return nil, unknownConstraint(c)
		}
		return compileTotal("limit", con.Limit, con.Value, NetScore)
	default:
		return nil, unknownConstraint(c)
	}
}

// CompileAll compiles every constraint, stopping at the first failure. The
// returned error names the index of the offending constraint.
func CompileAll(cs []constraint.Constraint) ([]Predicate, error) {
	preds := make([]Predicate, 0, len(cs))
	for i, c := range cs {
		p, err := Compile(c)
		if err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, err)
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// AllOf compiles cs into a single predicate requiring every constraint.
// An empty list compiles to Always.
func AllOf(cs ...constraint.Constraint) (Predicate, error) {
	preds, err := CompileAll(cs)
	if err != nil {
		return nil, err
	}
	return All(preds...), nil
}

// AnyOf compiles cs into a single predicate requiring at least one
// constraint. An empty list compiles to Never.
func AnyOf(cs ...constraint.Constraint) (Predicate, error) {
	preds, err := CompileAll(cs)
	if err != nil {
		return nil, err
	}
	return Any(preds...), nil
}

// All requires every predicate to hold. Vacuously true for zero predicates.
func All(preds ...Predicate) Predicate {
	if len(preds) == 0 {
		return Always
	}
	return func(s ability.Set) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Any requires at least one predicate to hold. Vacuously false for zero
// predicates: an empty Any is not a way to say "always".
func Any(preds ...Predicate) Predicate {
	if len(preds) == 0 {
		return Never
	}
	return func(s ability.Set) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// compileScore builds the two-stage filter: select the scores meeting
// ScoreLimit, then compare their count using NumScoresLimit.
func compileScore(c constraint.ScoreConstraint) (Predicate, error) {
	if err := checkLimit("num_scores_limit", c.NumScoresLimit); err != nil {
		return nil, err
	}
	if err := checkLimit("score_limit", c.ScoreLimit); err != nil {
		return nil, err
	}

	scoreLimit, score := c.ScoreLimit, c.Score
	relevant := func(v int) bool { return scoreLimit.Holds(v, score) }

	countLimit, numScores := c.NumScoresLimit, c.NumScores
	return func(s ability.Set) bool {
		return countLimit.Holds(CountScores(s, relevant), numScores)
	}, nil
}

// compileTotal compares an aggregate of the whole set against value.
func compileTotal(field string, limit constraint.Limit, value int, total func(ability.Set) int) (Predicate, error) {
	if err := checkLimit(field, limit); err != nil {
		return nil, err
	}
	return func(s ability.Set) bool {
		return limit.Holds(total(s), value)
	}, nil
}

func checkLimit(field string, l constraint.Limit) error {
	if err := l.Validate(); err != nil {
		return &CompileError{
			Code:    ErrCodeUnknownLimit,
			Field:   field,
			Message: fmt.Sprintf("limit %q is not one of %v", string(l), constraint.Limits),
		}
	}
	return nil
}

func unknownConstraint(c constraint.Constraint) error {
	return &CompileError{
		Code:    ErrCodeUnknownConstraint,
		Field:   "kind",
		Message: fmt.Sprintf("unsupported constraint type %T", c),
	}
}
