package testutil

import (
	"fmt"

	"github.com/roach88/statroll/internal/ability"
)

// SetOfScores builds an ability.Set whose draws sum to the given scores.
//
// Each score is split into three kept faces, highest first, so the draws look
// like real CLASSIC rolls. Scores outside [3, 18] cannot be split that way and
// are kept as a single face.
//
// Panics unless exactly ability.SetSize scores are given.
func SetOfScores(scores ...int) ability.Set {
	if len(scores) != ability.SetSize {
		panic(fmt.Sprintf("testutil: SetOfScores needs %d scores, got %d", ability.SetSize, len(scores)))
	}

	var s ability.Set
	for i, score := range scores {
		s[i] = ability.Draw{Kept: splitScore(score), Discarded: []int{}}
	}
	return s
}

// splitScore spreads score over three d6 faces.
func splitScore(score int) []int {
	if score < 3 || score > 18 {
		return []int{score}
	}
	faces := make([]int, 3)
	remaining := score
	for i := range faces {
		left := len(faces) - i - 1
		face := remaining - left
		if face > 6 {
			face = 6
		}
		faces[i] = face
		remaining -= face
	}
	return faces
}
