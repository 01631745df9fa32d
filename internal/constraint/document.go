package constraint

import "fmt"

// Document is the flat wire form of a Constraint. Only the fields belonging
// to Kind are meaningful; the rest stay zero and are omitted on output.
type Document struct {
	Kind           Kind  `json:"kind" yaml:"kind"`
	NumScoresLimit Limit `json:"num_scores_limit,omitempty" yaml:"num_scores_limit,omitempty"`
	NumScores      *int  `json:"num_scores,omitempty" yaml:"num_scores,omitempty"`
	ScoreLimit     Limit `json:"score_limit,omitempty" yaml:"score_limit,omitempty"`
	Score          *int  `json:"score,omitempty" yaml:"score,omitempty"`
	Limit          Limit `json:"limit,omitempty" yaml:"limit,omitempty"`
	Value          *int  `json:"value,omitempty" yaml:"value,omitempty"`
}

// ToDocument converts c into its wire form. It panics on a nil constraint,
// which only a caller bypassing the sealed interface can produce.
func ToDocument(c Constraint) Document {
	switch con := c.(type) {
	case ScoreConstraint:
		return Document{
			Kind:           KindScore,
			NumScoresLimit: con.NumScoresLimit,
			NumScores:      intPtr(con.NumScores),
			ScoreLimit:     con.ScoreLimit,
			Score:          intPtr(con.Score),
		}
	case *ScoreConstraint:
		return ToDocument(*con)
	case NetModConstraint:
		return Document{Kind: KindNetMod, Limit: con.Limit, Value: intPtr(con.Value)}
	case *NetModConstraint:
		return ToDocument(*con)
	case NetScoreConstraint:
		return Document{Kind: KindNetScore, Limit: con.Limit, Value: intPtr(con.Value)}
	case *NetScoreConstraint:
		return ToDocument(*con)
	default:
		panic(fmt.Sprintf("constraint: ToDocument on unsupported type %T", c))
	}
}

// ToDocuments converts every constraint in cs.
func ToDocuments(cs []Constraint) []Document {
	docs := make([]Document, len(cs))
	for i, c := range cs {
		docs[i] = ToDocument(c)
	}
	return docs
}

// FromDocument validates d and builds the matching Constraint. Missing
// numeric fields and unknown kinds or limits are reported as *Error.
func FromDocument(d Document) (Constraint, error) {
	switch d.Kind {
	case KindScore:
		numScores, err := required(d.NumScores, "num_scores")
		if err != nil {
			return nil, err
		}
		score, err := required(d.Score, "score")
		if err != nil {
			return nil, err
		}
		return build(NewScore(d.NumScoresLimit, numScores, d.ScoreLimit, score))
	case KindNetMod:
		value, err := required(d.Value, "value")
		if err != nil {
			return nil, err
		}
		return build(NewNetMod(d.Limit, value))
	case KindNetScore:
		value, err := required(d.Value, "value")
		if err != nil {
			return nil, err
		}
		return build(NewNetScore(d.Limit, value))
	default:
		return nil, &Error{
			Code:    CodeUnknownKind,
			Field:   "kind",
			Message: fmt.Sprintf("kind %s must be one of %v", quote(string(d.Kind)), Kinds),
		}
	}
}

// FromDocuments converts every document, stopping at the first error. The
// error names the offending index.
func FromDocuments(docs []Document) ([]Constraint, error) {
	cs := make([]Constraint, 0, len(docs))
	for i, d := range docs {
		c, err := FromDocument(d)
		if err != nil {
			return nil, fmt.Errorf("constraints[%d]: %w", i, err)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func required(v *int, field string) (int, error) {
	if v == nil {
		return 0, &Error{Code: CodeInvalidSpec, Field: field, Message: "is required"}
	}
	return *v, nil
}

func intPtr(v int) *int {
	return &v
}
