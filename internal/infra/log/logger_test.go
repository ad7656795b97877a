package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"civic/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "civic-seed"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(newTestConfig("warn", false), &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "kind", "user")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "user", line["kind"])
	assert.Equal(t, "civic-seed", line["service"])
}

func TestNewWithWriter_PrettyDebugOverride(t *testing.T) {
	var buf bytes.Buffer

	cfg := newTestConfig("error", true)
	cfg.Env.Debug = true

	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
