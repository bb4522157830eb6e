package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, New(Options{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(Options{Level: "loud"}).GetLevel())
	assert.Equal(t, logrus.DebugLevel, New(Options{Level: "debug"}).GetLevel())
	assert.Equal(t, logrus.WarnLevel, New(Options{Level: "WARN"}).GetLevel())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: "JSON", Out: &buf})
	l.WithField("goal", "(2,2)").Info("path found")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "path found", entry["msg"])
	assert.Equal(t, "(2,2)", entry["goal"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Out: &buf})
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	l := Init(Options{Out: &buf})
	assert.Same(t, l, Log)
	Log.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}
