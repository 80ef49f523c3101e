package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.WithField("spec", "SMA(20)").WithError(errors.New("boom")).Warn("skipped")
	log.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "SMA(20)", entry["spec"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "skipped", entry["message"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, log.GetLevel())

	log.SetLevel(logger.ErrorLevel)
	assert.Equal(t, logger.ErrorLevel, log.GetLevel())
	log.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestNop(t *testing.T) {
	l := logger.OrNop(nil)
	l.WithField("a", 1).Info("nothing")
	assert.Equal(t, logger.Disabled, l.GetLevel())
}
