package infra

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production")

	logger.Debug().Msg("hidden")
	logger.Info().Str("route", "/api/try-on").Msg("served")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "served", entry["message"])
	assert.Equal(t, "/api/try-on", entry["route"])
	assert.Equal(t, "roomdesign", entry["service"])
}

func TestNewLoggerTestEnvIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "test")
	logger.Error().Msg("nothing")
	assert.Zero(t, buf.Len())
}
