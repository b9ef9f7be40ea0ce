package alog

import (
	"encoding/json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMockLogChannelProvisioner(t *testing.T) {
	globalLM = nil

	// LOGGER_ENGINE is one of atempo's own channel labels (see logger.go),
	// not an arbitrary test label.
	prov, err := SetupMockLogger(LOGGER_ENGINE, zerolog.InfoLevel)
	assert.NoError(t, err)
	assert.NotNil(t, prov)
	assert.NotNil(t, prov.Writer)
	assert.Equal(t, string(LOGGER_ENGINE), prov.Component)

	// Log a forward-enumeration diagnostic the way aset.Forward's caller
	// would, through the LOGGER_ENGINE channel.
	logger := LOGGER(LOGGER_ENGINE)
	logger.Info().
		Str("set", "business-hours").
		Int("pairsEmitted", 3).
		Msg("forward enumeration advanced")

	// Validate that the log was captured
	assert.Greater(t, len(prov.Writer.Logs), 0, "Expected at least one log entry")

	// Parse the captured log
	var logOutput map[string]interface{}
	err = json.Unmarshal([]byte(prov.Writer.Logs[0]), &logOutput)
	assert.NoError(t, err, "Failed to parse the captured log")

	// Validate log fields
	assert.Equal(t, "info", logOutput["level"], "Expected log level to be 'info'")
	assert.Equal(t, "forward enumeration advanced", logOutput["message"], "Expected log message to match")
	assert.Equal(t, "business-hours", logOutput["set"], "Expected 'set' to be 'business-hours'")
	assert.EqualValues(t, 3, logOutput["pairsEmitted"], "Expected 'pairsEmitted' to be 3")
	assert.Equal(t, string(LOGGER_ENGINE), logOutput["component"], "Expected 'component' to carry the channel name")
	assert.NotNil(t, logOutput["time"], "Expected a time field in the log")
}
