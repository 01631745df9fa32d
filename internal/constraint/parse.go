package constraint

import (
	"fmt"
	"strconv"
	"strings"
)

// Text syntax accepted by Parse:
//
//	score:<LIMIT>:<count>:<LIMIT>:<score>
//	netmod:<LIMIT>:<value>
//	netscore:<LIMIT>:<value>
//
// LIMIT is AT_LEAST, AT_MOST, EXACTLY or one of the symbols >=, <=, =.
var limitSymbols = map[string]Limit{
	"AT_LEAST": AtLeast,
	"AT_MOST":  AtMost,
	"EXACTLY":  Exactly,
	">=":       AtLeast,
	"<=":       AtMost,
	"=":        Exactly,
}

// Parse reads a constraint from its command-line text form.
func Parse(text string) (Constraint, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")

	switch parts[0] {
	case "score":
		if len(parts) != 5 {
			return nil, textError(text, "score takes 4 fields: score:LIMIT:count:LIMIT:score")
		}
		numScoresLimit, err := parseLimit(text, parts[1])
		if err != nil {
			return nil, err
		}
		numScores, err := parseInt(text, parts[2])
		if err != nil {
			return nil, err
		}
		scoreLimit, err := parseLimit(text, parts[3])
		if err != nil {
			return nil, err
		}
		score, err := parseInt(text, parts[4])
		if err != nil {
			return nil, err
		}
		return build(NewScore(numScoresLimit, numScores, scoreLimit, score))
	case "netmod", "netscore":
		if len(parts) != 3 {
			return nil, textError(text, parts[0]+" takes 2 fields: "+parts[0]+":LIMIT:value")
		}
		limit, err := parseLimit(text, parts[1])
		if err != nil {
			return nil, err
		}
		value, err := parseInt(text, parts[2])
		if err != nil {
			return nil, err
		}
		if parts[0] == "netmod" {
			return build(NewNetMod(limit, value))
		}
		return build(NewNetScore(limit, value))
	default:
		return nil, textError(text, "must start with score:, netmod: or netscore:")
	}
}

// ParseAll parses every constraint text in order.
func ParseAll(texts []string) ([]Constraint, error) {
	cs := make([]Constraint, 0, len(texts))
	for _, s := range texts {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func parseLimit(text, s string) (Limit, error) {
	l, ok := limitSymbols[s]
	if !ok {
		return "", &Error{
			Code:    CodeUnknownLimit,
			Message: fmt.Sprintf("%s in %s must be one of AT_LEAST, AT_MOST, EXACTLY, >=, <=, =", quote(s), quote(text)),
		}
	}
	return l, nil
}

func parseInt(text, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, textError(text, fmt.Sprintf("%s is not an integer", quote(s)))
	}
	return n, nil
}

func textError(text, msg string) error {
	return &Error{Code: CodeInvalidSpec, Message: fmt.Sprintf("%s: %s", quote(text), msg)}
}
