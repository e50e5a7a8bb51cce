package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sqlite-fuzz/internal/config"
)

func TestSetupJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	require.NoError(t, Setup(config.Logging{Format: "json", Level: "debug"}, &buf))

	log.Debug().Str("method", "gram").Msg("scored")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "gram", entry["method"])
	assert.Equal(t, "scored", entry["message"])
}

func TestSetupLevelFilters(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	require.NoError(t, Setup(config.Logging{Format: "console", Level: "warn"}, &buf))

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupBadLevel(t *testing.T) {
	require.Error(t, Setup(config.Logging{Level: "chatty"}, nil))
}
