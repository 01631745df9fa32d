package constraint

// Kind is the tag carried by every constraint variant.
type Kind string

const (
	// KindScore requires a number of scores to fall above, below or at a value.
	KindScore Kind = "SCORE_CONSTRAINT"

	// KindNetMod requires the sum of all ability modifiers to meet a limit.
	KindNetMod Kind = "NET_MOD_CONSTRAINT"

	// KindNetScore requires the sum of all scores to meet a limit.
	KindNetScore Kind = "NET_SCORE_CONSTRAINT"
)

// Kinds lists every variant tag.
var Kinds = []Kind{KindScore, KindNetMod, KindNetScore}

// Constraint is a declarative numeric requirement over a six-score set.
//
// This is a sealed interface - only types in this package implement it.
type Constraint interface {
	// Kind returns the variant tag.
	Kind() Kind

	constraintNode() // Marker method - seals interface to this package
}

// ScoreConstraint requires the count of scores meeting ScoreLimit relative to
// Score to itself meet NumScoresLimit relative to NumScores.
//
// Example: "at least 2 scores of 15 or more"
//
//	ScoreConstraint{NumScoresLimit: AtLeast, NumScores: 2, ScoreLimit: AtLeast, Score: 15}
type ScoreConstraint struct {
	NumScoresLimit Limit
	NumScores      int
	ScoreLimit     Limit
	Score          int
}

// Kind implements Constraint.
func (ScoreConstraint) Kind() Kind { return KindScore }

func (ScoreConstraint) constraintNode() {}

// NetModConstraint requires the sum of the six ability modifiers to meet
// Limit relative to Value.
type NetModConstraint struct {
	Limit Limit
	Value int
}

// Kind implements Constraint.
func (NetModConstraint) Kind() Kind { return KindNetMod }

func (NetModConstraint) constraintNode() {}

// NetScoreConstraint requires the sum of the six raw scores to meet Limit
// relative to Value.
type NetScoreConstraint struct {
	Limit Limit
	Value int
}

// Kind implements Constraint.
func (NetScoreConstraint) Kind() Kind { return KindNetScore }

func (NetScoreConstraint) constraintNode() {}

// NewScore builds a ScoreConstraint, rejecting unknown limits.
func NewScore(numScoresLimit Limit, numScores int, scoreLimit Limit, score int) (ScoreConstraint, error) {
	if err := numScoresLimit.Validate(); err != nil {
		return ScoreConstraint{}, withField(err, "num_scores_limit")
	}
	if err := scoreLimit.Validate(); err != nil {
		return ScoreConstraint{}, withField(err, "score_limit")
	}
	return ScoreConstraint{
		NumScoresLimit: numScoresLimit,
		NumScores:      numScores,
		ScoreLimit:     scoreLimit,
		Score:          score,
	}, nil
}

// NewNetMod builds a NetModConstraint, rejecting unknown limits.
func NewNetMod(limit Limit, value int) (NetModConstraint, error) {
	if err := limit.Validate(); err != nil {
		return NetModConstraint{}, withField(err, "limit")
	}
	return NetModConstraint{Limit: limit, Value: value}, nil
}

// NewNetScore builds a NetScoreConstraint, rejecting unknown limits.
func NewNetScore(limit Limit, value int) (NetScoreConstraint, error) {
	if err := limit.Validate(); err != nil {
		return NetScoreConstraint{}, withField(err, "limit")
	}
	return NetScoreConstraint{Limit: limit, Value: value}, nil
}

// build drops the zero variant a failed constructor returns so callers never
// see a non-nil Constraint next to an error.
func build(c Constraint, err error) (Constraint, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
