// Package preset compiles named constraint bundles written in CUE.
//
// A preset file declares presets under the top-level "preset" struct:
//
//	preset: heroic: {
//		description: "Nothing below 10, at least one 17"
//		method:      "STANDARD"
//		constraints: [{
//			kind:             "SCORE_CONSTRAINT"
//			num_scores_limit: "EXACTLY"
//			num_scores:       0
//			score_limit:      "AT_MOST"
//			score:            9
//		}]
//	}
//
// Files are unified with an embedded schema (schema.cue), so typos in field
// names, unknown limits and missing values are rejected with a CUE source
// position. method defaults to STANDARD and description to "".
//
// Four presets ship built in (builtin.cue): colville_classic, neo_colville,
// mercer and mercer_plus.
package preset
