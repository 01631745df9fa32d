package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Constraint
	}{
		{"score:AT_LEAST:2:AT_LEAST:15", ScoreConstraint{AtLeast, 2, AtLeast, 15}},
		{"score:>=:2:>=:15", ScoreConstraint{AtLeast, 2, AtLeast, 15}},
		{"score:AT_MOST:0:AT_LEAST:3", ScoreConstraint{AtMost, 0, AtLeast, 3}},
		{"score:=:1:<=:8", ScoreConstraint{Exactly, 1, AtMost, 8}},
		{"netmod:AT_LEAST:2", NetModConstraint{AtLeast, 2}},
		{"netmod:<=:-4", NetModConstraint{AtMost, -4}},
		{"netscore:EXACTLY:70", NetScoreConstraint{Exactly, 70}},
		{" netscore:>=:75 ", NetScoreConstraint{AtLeast, 75}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text string
		code string
	}{
		{"", CodeInvalidSpec},
		{"mods:AT_LEAST:2", CodeInvalidSpec},
		{"score:AT_LEAST:2:AT_LEAST", CodeInvalidSpec},
		{"netmod:AT_LEAST", CodeInvalidSpec},
		{"netmod:AT_LEAST:two", CodeInvalidSpec},
		{"netmod:at_least:2", CodeUnknownLimit},
		{"score:>:2:>=:15", CodeUnknownLimit},
		{"score:>=:2:>=:x", CodeInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseAllStopsAtFirstError(t *testing.T) {
	cs, err := ParseAll([]string{"netmod:>=:2", "netscore:>=:70"})
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	_, err = ParseAll([]string{"netmod:>=:2", "bogus"})
	assert.Error(t, err)
}
