package predicate

import "github.com/roach88/statroll/internal/ability"

// Scores returns the six scores of s in set order.
func Scores(s ability.Set) []int {
	return s.Scores()
}

// NetMod returns the sum of the ability modifiers of every score in s.
func NetMod(s ability.Set) int {
	total := 0
	for _, d := range s {
		total += ability.Modifier(d.Score())
	}
	return total
}

// NetScore returns the sum of every score in s.
func NetScore(s ability.Set) int {
	total := 0
	for _, d := range s {
		total += d.Score()
	}
	return total
}

// CountScores returns how many scores in s satisfy holds.
func CountScores(s ability.Set, holds func(score int) bool) int {
	n := 0
	for _, d := range s {
		if holds(d.Score()) {
			n++
		}
	}
	return n
}
