package ability

import "fmt"

// SetSize is the number of ability scores in a character.
const SetSize = 6

// Draw is one ability score's raw generation result.
//
// Invariant: Score() == sum(Kept). Kept and Discarded together hold every face
// the method drew, in draw order.
type Draw struct {
	Kept      []int `json:"kept"`
	Discarded []int `json:"discarded"`
}

// Score returns the ability score: the sum of the kept faces.
func (d Draw) Score() int {
	total := 0
	for _, face := range d.Kept {
		total += face
	}
	return total
}

// Modifier returns the ability modifier for this draw's score.
func (d Draw) Modifier() int {
	return Modifier(d.Score())
}

// Set is one attempt at a character's six ability scores.
type Set [SetSize]Draw

// Scores returns the six scores in set order.
func (s Set) Scores() []int {
	scores := make([]int, len(s))
	for i, d := range s {
		scores[i] = d.Score()
	}
	return scores
}

// Modifier converts a score into its ability modifier: floor((score-10)/2).
//
// Go's integer division truncates toward zero, so odd scores below 10 need
// the extra step down (score 3 is -4, not -3).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// SetFromScores builds a Set for already-known scores, such as a character
// sheet being checked after the fact. Each draw keeps its score as a single
// value and discards nothing.
func SetFromScores(scores []int) (Set, error) {
	var s Set
	if len(scores) != SetSize {
		return s, fmt.Errorf("need %d scores, got %d", SetSize, len(scores))
	}
	for i, score := range scores {
		s[i] = Draw{Kept: []int{score}, Discarded: []int{}}
	}
	return s, nil
}
