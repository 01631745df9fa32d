package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/statroll/internal/constraint"
)

// NBSP is the non-breaking space DescribeNBSP places inside phrase groups.
const NBSP = "\u00a0"

// countWords phrase the limit on a count or total ("at least 2").
var countWords = map[constraint.Limit][]string{
	constraint.AtLeast: {"at", "least"},
	constraint.AtMost:  {"at", "most"},
	constraint.Exactly: {"exactly"},
}

// thresholdWords phrase the limit on an individual score ("15 or more").
var thresholdWords = map[constraint.Limit][]string{
	constraint.AtLeast: {"or", "more"},
	constraint.AtMost:  {"or", "less"},
	constraint.Exactly: {"exactly"},
}

// Describe renders c as a readable phrase with ordinary spaces.
func Describe(c constraint.Constraint) string {
	return join(phrase(c), " ")
}

// DescribeNBSP renders c like Describe, but binds the words of each group
// ("at least 2", "2 scores", "or more") with non-breaking spaces so a
// wrapping display never splits them.
func DescribeNBSP(c constraint.Constraint) string {
	return join(phrase(c), NBSP)
}

// DescribeAll renders every constraint in order.
func DescribeAll(cs []constraint.Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = Describe(c)
	}
	return out
}

// phrase splits a constraint into word groups. Groups are separated by plain
// spaces; words within a group by the caller's separator.
func phrase(c constraint.Constraint) [][]string {
	switch v := c.(type) {
	case constraint.NetModConstraint:
		return total("mods", v.Limit, v.Value)
	case *constraint.NetModConstraint:
		return total("mods", v.Limit, v.Value)
	case constraint.NetScoreConstraint:
		return total("scores", v.Limit, v.Value)
	case *constraint.NetScoreConstraint:
		return total("scores", v.Limit, v.Value)
	case constraint.ScoreConstraint:
		return score(v)
	case *constraint.ScoreConstraint:
		return score(*v)
	default:
		return [][]string{{fmt.Sprintf("%v", c)}}
	}
}

func total(noun string, limit constraint.Limit, value int) [][]string {
	return [][]string{
		{"sum"}, {"of"}, {"all"}, {noun}, {"equal"},
		append(words(countWords, limit), strconv.Itoa(value)),
	}
}

func score(c constraint.ScoreConstraint) [][]string {
	noun := "scores"
	if c.NumScores == 1 {
		noun = "score"
	}
	return [][]string{
		words(countWords, c.NumScoresLimit),
		{strconv.Itoa(c.NumScores), noun},
		{strconv.Itoa(c.Score)},
		words(thresholdWords, c.ScoreLimit),
	}
}

// words looks up the phrase for l, falling back to the raw limit name.
func words(table map[constraint.Limit][]string, l constraint.Limit) []string {
	if w, ok := table[l]; ok {
		return append([]string(nil), w...)
	}
	return []string{string(l)}
}

func join(groups [][]string, inner string) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = strings.Join(g, inner)
	}
	return strings.Join(parts, " ")
}

// Modifier formats an ability modifier with an explicit sign: "+2", "-1", "+0".
func Modifier(mod int) string {
	if mod >= 0 {
		return "+" + strconv.Itoa(mod)
	}
	return strconv.Itoa(mod)
}
