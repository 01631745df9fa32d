// Package ability rolls individual ability scores and groups them into
// six-score sets.
//
// A Draw records every die face a rolling method produced, split into the
// faces summed into the score (Kept) and the faces thrown away (Discarded).
// A Set is one complete attempt at a character: exactly six Draws.
//
// Rolling methods:
//   - STANDARD: 4d6, drop the single lowest (first occurrence on ties)
//   - CLASSIC: 3d6, keep all
//   - AUGMENTED: 2d6 + a fixed 6, keep all
package ability
