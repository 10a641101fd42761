package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contriboss/semver-go/internal/log"
)

var _ log.Logger = (*LogrusLogger)(nil)

func TestNewLogrusLoggerDefaultsToDiscard(t *testing.T) {
	t.Parallel()

	lg := NewLogrusLogger(LogrusConfig{Level: logrus.InfoLevel})

	assert.Equal(t, io.Discard, lg.Output)
}

func TestLogrusLoggerFileSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "semver.log")
	lg := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		Structured:   true,
		Level:        logrus.DebugLevel,
		FileLocation: path,
	})

	lg.Infof("parsed %d constraints", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "parsed 3 constraints", entry.Msg)
}

func TestLogrusLoggerLevelFiltering(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "semver.log")
	lg := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		Structured:   true,
		Level:        logrus.WarnLevel,
		FileLocation: path,
	})

	lg.Info("quiet")
	lg.Warn("loud")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "loud")
	assert.NotContains(t, string(data), "quiet")
}
