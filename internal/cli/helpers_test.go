package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/statroll/internal/config"
)

// testOptions returns root options with a fixed configuration so tests do
// not depend on the environment. The library path points into a temp dir.
func testOptions(t *testing.T, format string) *RootOptions {
	t.Helper()
	cfg := config.Config{
		Tolerance: 500,
		Method:    "STANDARD",
		DBPath:    filepath.Join(t.TempDir(), "statroll.db"),
		LogLevel:  "info",
	}
	return &RootOptions{Format: format, cfg: &cfg}
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeResponse parses a CLIResponse whose Data is decoded into data.
func decodeResponse(t *testing.T, out string, data any) CLIResponse {
	t.Helper()
	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), "output: %s", out)
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.CLIResponse
}
