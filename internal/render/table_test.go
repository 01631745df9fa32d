package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/rollout"
	"github.com/roach88/statroll/internal/testutil"
)

func TestSetTable(t *testing.T) {
	set := testutil.SetOfScores(15, 14, 13, 12, 11, 10)

	out := Plain().Set(set)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8, "header, six rows, totals")

	assert.Equal(t, "#  score  mod  kept   discarded", lines[0])
	assert.Equal(t, "1  15     +2   6 6 3  -", lines[1])
	assert.Equal(t, "6  10     +0   6 3 1  -", lines[6])
	assert.Equal(t, "net score 75, net mod +6", lines[7])
}

func TestSetTableShowsDiscards(t *testing.T) {
	var set ability.Set
	for i := range set {
		set[i] = ability.Draw{Kept: []int{4, 5, 6}, Discarded: []int{1}}
	}

	out := Plain().Set(set)
	assert.Contains(t, out, "4 5 6  1")
}

func TestRolloutFound(t *testing.T) {
	set := testutil.SetOfScores(18, 16, 14, 12, 10, 8)
	out := Plain().Rollout(rollout.Result{Set: &set, Attempts: 3, Found: true, Tolerance: 500})

	assert.True(t, strings.HasPrefix(out, "found on attempt 3 of 500\n"))
	assert.Contains(t, out, "net score 78, net mod +9")
}

func TestRolloutExhausted(t *testing.T) {
	out := Plain().Rollout(rollout.Result{Attempts: 11, Tolerance: 10})
	assert.Equal(t, "no set satisfied the constraints within 10 attempts\n", out)
}

func TestConstraintsList(t *testing.T) {
	out := Plain().Constraints("mercer", []constraint.Constraint{
		constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: 70},
	})
	assert.Equal(t, "mercer\n  - sum of all scores equal at least 70\n", out)

	out = Plain().Constraints("", nil)
	assert.Equal(t, "  (no constraints)\n", out)
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "PASS ok\n", Plain().Verdict(true, "ok"))
	assert.Equal(t, "FAIL nope\n", Plain().Verdict(false, "nope"))
}

func TestStylesForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	out := New(StylesFor(&buf)).Verdict(true, "plain")
	assert.Equal(t, "PASS plain\n", out)
}
