package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPresetPasses(t *testing.T) {
	cmd := NewCheckCommand(testOptions(t, "text"))
	out, _, err := execute(cmd, "--scores", "9,15,13,16,8,18", "--preset", "colville_classic")
	require.NoError(t, err)

	assert.Contains(t, out, "scores [9 15 13 16 8 18] (net score 79, net mod +8) against 1 constraint(s), all must hold")
	assert.Contains(t, out, "  PASS at least 2 scores 15 or more\n")
	assert.Contains(t, out, "PASS overall\n")
}

func TestCheckPresetFails(t *testing.T) {
	cmd := NewCheckCommand(testOptions(t, "text"))
	out, _, err := execute(cmd, "--scores", "12,16,8,8,9,10", "--preset", "colville_classic")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "  FAIL at least 2 scores 15 or more\n")
	assert.Contains(t, out, "FAIL overall\n")
}

func TestCheckAllVersusAny(t *testing.T) {
	// net mod of 12,16,8,8,9,10 is +1, net score is 63.
	args := []string{"--scores", "12,16,8,8,9,10", "-c", "netmod:>=:2", "-c", "netscore:>=:60"}

	_, _, err := execute(NewCheckCommand(testOptions(t, "json")), args...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, _, err := execute(NewCheckCommand(testOptions(t, "json")), append(args, "--any")...)
	require.NoError(t, err)

	var result CheckResult
	resp := decodeResponse(t, out, &result)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "any", result.Mode)
	assert.True(t, result.Pass)
	assert.Equal(t, 63, result.NetScore)
	assert.Equal(t, 1, result.NetMod)
	require.Len(t, result.Results, 2)
	assert.False(t, result.Results[0].Pass)
	assert.Equal(t, "sum of all mods equal at least 2", result.Results[0].Phrase)
	assert.True(t, result.Results[1].Pass)
	assert.Equal(t, "sum of all scores equal at least 60", result.Results[1].Phrase)
}

func TestCheckEmptyConstraints(t *testing.T) {
	_, _, err := execute(NewCheckCommand(testOptions(t, "text")), "--scores", "3,3,3,3,3,3")
	require.NoError(t, err, "every constraint of an empty list holds")

	out, _, err := execute(NewCheckCommand(testOptions(t, "text")), "--scores", "18,18,18,18,18,18", "--any")
	require.Error(t, err, "no constraint of an empty list holds")
	assert.Contains(t, out, "FAIL overall")
}

func TestCheckFailedJSON(t *testing.T) {
	cmd := NewCheckCommand(testOptions(t, "json"))
	out, _, err := execute(cmd, "--scores", "10,10,10,10,10,10", "-c", "netscore:=:61")
	require.Error(t, err)

	var result CheckResult
	resp := decodeResponse(t, out, &result)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeCheckFailed, resp.Error.Code)
	assert.Equal(t, "all", result.Mode)
	assert.False(t, result.Pass)
	assert.Equal(t, []int{10, 10, 10, 10, 10, 10}, result.Scores)
}

func TestCheckCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too few scores", []string{"--scores", "10,10,10"}},
		{"too many scores", []string{"--scores", "10,10,10,10,10,10,10"}},
		{"invalid constraint", []string{"--scores", "10,10,10,10,10,10", "-c", "netmod:>:2"}},
		{"unknown preset", []string{"--scores", "10,10,10,10,10,10", "--preset", "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(NewCheckCommand(testOptions(t, "text")), tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestCheckRequiresScores(t *testing.T) {
	_, _, err := execute(NewCheckCommand(testOptions(t, "text")), "-c", "netmod:>=:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "scores" not set`)
}
