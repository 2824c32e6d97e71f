package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, zerolog.InfoLevel, false)

	shamirLogger := Layer(logger, LayerShamir)
	shamirLogger.Info().Int("votes", 3).Msg("winner")
	shamirLogger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"layer":"SHAMIR"`)
	assert.Contains(t, out, `"votes":3`)
	assert.NotContains(t, out, "hidden")
}

func TestSetupLoggerPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, zerolog.DebugLevel, true)

	sourceLogger := Layer(logger, LayerSource)
	sourceLogger.Warn().Msg("share skipped")

	out := buf.String()
	assert.Contains(t, out, "[SOURCE]")
	assert.Contains(t, out, "share skipped")
	assert.NotContains(t, out, "layer=")
}
