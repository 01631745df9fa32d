// Package constraint defines the numeric requirements a rolled set of ability
// scores can be asked to meet.
//
// SEALED INTERFACE:
//
// Constraint is a sealed interface using the marker method pattern. Only the
// three variants in this package implement it:
//
//	switch c := con.(type) {
//	case ScoreConstraint:
//	    // count of scores meeting a limit, itself meeting a limit
//	case NetModConstraint:
//	    // sum of ability modifiers against a limit
//	case NetScoreConstraint:
//	    // sum of raw scores against a limit
//	}
//
// Consumers (the predicate compiler, the renderer) switch exhaustively over
// these variants and treat anything else as a validation error.
//
// WIRE FORM:
//
// Document is the flat, tagged record used for YAML files, CUE presets, the
// preset library and JSON output. FromDocument validates; ToDocument is total.
package constraint
