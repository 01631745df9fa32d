package ability

import (
	"github.com/roach88/statroll/internal/dice"
)

// Method names an ability score rolling method.
type Method string

const (
	// Standard rolls 4d6 and drops the lowest die.
	Standard Method = "STANDARD"

	// Classic rolls 3d6 and keeps every die.
	Classic Method = "CLASSIC"

	// Augmented rolls 2d6 and adds a fixed 6 as a third kept die.
	Augmented Method = "AUGMENTED"
)

// Methods lists every supported method in display order.
var Methods = []Method{Standard, Classic, Augmented}

// augmentedFloor is the fixed face prepended by the augmented method.
const augmentedFloor = 6

// RollFunc produces one Draw from a dice source.
type RollFunc func(src dice.Source) Draw

// ParseMethod maps a method name onto a Method. Only the exact upper-case
// names are accepted.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	if _, err := m.Roller(); err != nil {
		return "", err
	}
	return m, nil
}

// Roller returns the roll function for m, or a *MethodError when m is not a
// known method.
func (m Method) Roller() (RollFunc, error) {
	switch m {
	case Standard:
		return RollStandard, nil
	case Classic:
		return RollClassic, nil
	case Augmented:
		return RollAugmented, nil
	default:
		return nil, &MethodError{Method: string(m)}
	}
}

// Roll produces one Draw using method m.
func Roll(m Method, src dice.Source) (Draw, error) {
	roll, err := m.Roller()
	if err != nil {
		return Draw{}, err
	}
	return roll(src), nil
}

// RollSet produces a fresh Set of six independent Draws using method m.
func RollSet(m Method, src dice.Source) (Set, error) {
	roll, err := m.Roller()
	if err != nil {
		return Set{}, err
	}
	return rollSet(roll, src), nil
}

func rollSet(roll RollFunc, src dice.Source) Set {
	var s Set
	for i := range s {
		s[i] = roll(src)
	}
	return s
}

// RollStandard rolls four dice and discards the first lowest face. The three
// remaining faces keep their draw order.
func RollStandard(src dice.Source) Draw {
	faces := dice.RollN(src, 4)

	lowest := 0
	for i, face := range faces {
		if face < faces[lowest] {
			lowest = i
		}
	}

	kept := make([]int, 0, len(faces)-1)
	kept = append(kept, faces[:lowest]...)
	kept = append(kept, faces[lowest+1:]...)

	return Draw{
		Kept:      kept,
		Discarded: []int{faces[lowest]},
	}
}

// RollClassic rolls three dice and keeps all of them.
func RollClassic(src dice.Source) Draw {
	return Draw{
		Kept:      dice.RollN(src, 3),
		Discarded: []int{},
	}
}

// RollAugmented rolls two dice and keeps them behind a fixed 6.
func RollAugmented(src dice.Source) Draw {
	kept := make([]int, 0, 3)
	kept = append(kept, augmentedFloor)
	kept = append(kept, dice.RollN(src, 2)...)
	return Draw{
		Kept:      kept,
		Discarded: []int{},
	}
}
