package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowfinance/config"
	"flowfinance/logging"
)

func TestSetup_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	require.NoError(t, logging.Setup(config.LogConfig{Level: "warn", Format: "auto"}, &buf))

	log.Info().Msg("hidden")
	log.Warn().Str("kind", "loan").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "loan", entry["kind"])
	assert.False(t, logging.IsTerminal(&buf))
}

func TestSetup_Errors(t *testing.T) {
	assert.Error(t, logging.Setup(config.LogConfig{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, logging.Setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{}))
}
