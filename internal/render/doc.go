// Package render turns constraints and rollout results into human-readable
// text for the CLI.
//
// Describe produces the one-line phrase for a constraint ("at least 2 scores
// 15 or more"). Renderer lays out tables and is colour-aware: styling is only
// applied when output goes to a terminal.
package render
