package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(&buf, "debug", "json")

	logger.WithField("game_id", "42").Info("game added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "game added", entry["msg"])
	assert.Equal(t, "42", entry["game_id"])
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestNewWithOutput_BadLevelFallsBackToInfo(t *testing.T) {
	logger := NewWithOutput(&bytes.Buffer{}, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
