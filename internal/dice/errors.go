package dice

import "errors"

// ErrScriptExhausted is the panic value raised by Scripted when it has no
// faces left.
var ErrScriptExhausted = errors.New("dice: scripted source exhausted")

// ValidFace reports whether face is a legal d6 result.
func ValidFace(face int) bool {
	return face >= 1 && face <= Sides
}
