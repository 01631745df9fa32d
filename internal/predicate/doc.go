// Package predicate compiles constraints into boolean tests over a rolled
// ability.Set and composes those tests.
//
// Compilation happens once, up front. Every validation problem (a nil or
// foreign constraint, an unknown limit) is reported by Compile, never by the
// returned Predicate. A compiled Predicate is a pure function with no state,
// so one instance can be reused across any number of sets.
//
// Composition:
//   - All: every sub-predicate holds; true for zero predicates
//   - Any: at least one sub-predicate holds; false for zero predicates
package predicate
