package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsText(t *testing.T) {
	out, _, err := execute(NewPresetsCommand(testOptions(t, "text")))
	require.NoError(t, err)

	assert.Contains(t, out, "colville_classic (STANDARD): At least two scores of 15 or more\n  - at least 2 scores 15 or more\n")
	assert.Contains(t, out, "neo_colville (STANDARD): Ability modifiers sum to at least +2\n  - sum of all mods equal at least 2\n")
	assert.Contains(t, out, "mercer (STANDARD): Ability scores sum to at least 70\n")
	assert.Contains(t, out, "mercer_plus (STANDARD): Ability scores sum to at least 75\n")
}

func TestPresetsJSON(t *testing.T) {
	out, _, err := execute(NewPresetsCommand(testOptions(t, "json")))
	require.NoError(t, err)

	var views []PresetView
	resp := decodeResponse(t, out, &views)
	assert.Equal(t, "ok", resp.Status)

	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
		assert.Equal(t, "builtin", v.Source)
		assert.Len(t, v.Phrases, len(v.Constraints))
	}
	assert.Equal(t, []string{"colville_classic", "mercer", "mercer_plus", "neo_colville"}, names)
}

func TestPresetsWithCUEFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.cue")
	require.NoError(t, os.WriteFile(path, []byte(`
preset: mercer: {
	description: "House rule: a gentler Mercer"
	constraints: [{kind: "NET_SCORE_CONSTRAINT", limit: "AT_LEAST", value: 65}]
}
preset: heroic: {
	method: "CLASSIC"
	constraints: [{kind: "SCORE_CONSTRAINT", num_scores_limit: "AT_LEAST", num_scores: 1, score_limit: "AT_LEAST", score: 17}]
}
`), 0644))

	out, _, err := execute(NewPresetsCommand(testOptions(t, "json")), "--cue", path)
	require.NoError(t, err)

	var views []PresetView
	decodeResponse(t, out, &views)
	require.Len(t, views, 5)

	byName := map[string]PresetView{}
	for _, v := range views {
		byName[v.Name] = v
	}
	assert.Equal(t, path, byName["mercer"].Source)
	assert.Equal(t, []string{"sum of all scores equal at least 65"}, byName["mercer"].Phrases)
	assert.Equal(t, "CLASSIC", byName["heroic"].Method)
	assert.Equal(t, []string{"at least 1 score 17 or more"}, byName["heroic"].Phrases)
	assert.Equal(t, "builtin", byName["mercer_plus"].Source)
}

func TestPresetsInvalidCUEFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(path, []byte(`preset: broken: {method: "STANDARD", constraints: [{kind: "NET_MOD_CONSTRAINT", limit: "ABOUT", value: 1}]}`), 0644))

	out, _, err := execute(NewPresetsCommand(testOptions(t, "text")), "--cue", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E_INVALID_INPUT]: failed to load presets")
}
