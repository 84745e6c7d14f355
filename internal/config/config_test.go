package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Search.Target)
	assert.Equal(t, 10, cfg.Search.InitialMax)
	assert.Equal(t, "frontier", cfg.Search.Pacing)
	assert.Equal(t, 0, cfg.Search.MaxRounds)
	assert.True(t, cfg.Output.Rounds)
	assert.False(t, cfg.Output.Map)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	p, err := cfg.Pacing()
	require.NoError(t, err)
	assert.Equal(t, "frontier", p.Name())
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latticewalk.yaml")
	doc := "search:\n  target: 11\n  pacing: fixed\n  batch: 5\noutput:\n  map: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Search.Target)
	assert.Equal(t, "fixed", cfg.Search.Pacing)
	assert.Equal(t, 5, cfg.Search.Batch)
	assert.True(t, cfg.Output.Map)

	t.Setenv("LATTICEWALK_SEARCH_TARGET", "13")
	cfg, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 13, cfg.Search.Target, "env beats file")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("target", 8, "")
	flags.String("log-level", "warn", "")
	require.NoError(t, flags.Parse([]string{"--target", "4", "--log-level", "debug"}))
	cfg, err = config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.Target, "flag beats env")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Search.Batch, "unset values still come from the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		env  string
		val  string
		want error
	}{
		{"LATTICEWALK_SEARCH_TARGET", "-1", config.ErrInvalidTarget},
		{"LATTICEWALK_SEARCH_INITIAL_MAX", "-3", config.ErrInvalidMax},
		{"LATTICEWALK_SEARCH_MAX_ROUNDS", "-2", config.ErrInvalidMaxRounds},
		{"LATTICEWALK_SEARCH_PACING", "sideways", config.ErrInvalidPacing},
		{"LATTICEWALK_LOGGING_LEVEL", "loud", config.ErrInvalidLogLevel},
		{"LATTICEWALK_LOGGING_FORMAT", "xml", config.ErrInvalidLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			t.Setenv(tc.env, tc.val)
			_, err := config.Load("", nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "round", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"round":3`), out)

	_, err = config.NewLogger(config.LoggingConfig{Level: "loud"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	_, err = config.NewLogger(config.LoggingConfig{Format: "xml"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
}
