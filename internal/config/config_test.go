package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("chessvar", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "off", cfg.Display.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, "chessvar", cfg.CLI.Prompt)
	assert.Empty(t, cfg.CLI.HistoryFile)
	assert.Empty(t, cfg.CLI.FEN)
}

func TestLoadNilFlagSet(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Display.Theme)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHESSVAR_DISPLAY_THEME", "green")
	t.Setenv("CHESSVAR_LOG_LEVEL", "debug")
	t.Setenv("CHESSVAR_LOG_PRETTY", "true")
	t.Setenv("CHESSVAR_CLI_HISTORY_FILE", "/tmp/chessvar_history")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "green", cfg.Display.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "/tmp/chessvar_history", cfg.CLI.HistoryFile)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CHESSVAR_DISPLAY_THEME", "green")

	cfg, err := Load(newFlags(t,
		"--theme", "brown",
		"--prompt", "fh",
		"--fen", "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	))
	require.NoError(t, err)

	assert.Equal(t, "brown", cfg.Display.Theme)
	assert.Equal(t, "fh", cfg.CLI.Prompt)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", cfg.CLI.FEN)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown theme", []string{"--theme", "purple"}, "Display.Theme must be one of [off brown green gray]"},
		{"unknown level", []string{"--log-level", "verbose"}, "Log.Level must be one of"},
		{"long prompt", []string{"--prompt", "a-prompt-that-is-far-too-long-to-be-useful"}, "CLI.Prompt must be at most 32 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newFlags(t, tt.args...))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidateEmptyPrompt(t *testing.T) {
	cfg := &Config{
		Display: DisplayConfig{Theme: "off"},
		Log:     LogConfig{Level: "info"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLI.Prompt is required")
}
