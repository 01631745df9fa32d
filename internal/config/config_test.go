package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/statroll/internal/ability"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Tolerance)
	assert.Equal(t, ability.Standard, cfg.RollMethod())
	assert.Equal(t, "statroll.db", cfg.DBPath)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STATROLL_TOLERANCE", "25")
	t.Setenv("STATROLL_METHOD", "AUGMENTED")
	t.Setenv("STATROLL_DB", "/tmp/lib.db")
	t.Setenv("STATROLL_SEED", "1234")
	t.Setenv("STATROLL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Tolerance)
	assert.Equal(t, ability.Augmented, cfg.RollMethod())
	assert.Equal(t, "/tmp/lib.db", cfg.DBPath)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"zero tolerance", "STATROLL_TOLERANCE", "0", "STATROLL_TOLERANCE must be greater than 0"},
		{"negative tolerance", "STATROLL_TOLERANCE", "-3", "STATROLL_TOLERANCE must be greater than 0"},
		{"lower-case method", "STATROLL_METHOD", "standard", "STATROLL_METHOD must be one of"},
		{"unknown method", "STATROLL_METHOD", "HEROIC", "STATROLL_METHOD must be one of"},
		{"unknown level", "STATROLL_LOG_LEVEL", "loud", "STATROLL_LOG_LEVEL must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadRejectsUnparseable(t *testing.T) {
	t.Setenv("STATROLL_TOLERANCE", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := Config{Tolerance: 0, Method: "x", DBPath: "", LogLevel: "info"}

	err := cfg.Validate()
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Len(t, cerr.Messages, 3)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
}
