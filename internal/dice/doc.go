// Package dice provides the six-sided die source used by the attribute roller.
//
// The core never hard-depends on a generator: everything that rolls accepts a
// Source. Production code uses NewRand (seeded math/rand), tests use
// NewScripted to replay exact die faces.
//
// Sources report values as drawn. Nothing downstream clamps or repairs an
// out-of-range face; a Source that returns one is violating its contract.
package dice
