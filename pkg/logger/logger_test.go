package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", Output(&buf))

	l.Info("server serving on port %s", "8000")

	line := decodeLine(t, &buf)
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "server serving on port 8000", line["message"])
	assert.Contains(t, line, "time")
}

func TestLogger_ErrorWithFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", Output(&buf))

	format := "http - v1 - %s"
	l.Error(errors.New("boom"), format, "convertVoice")

	line := decodeLine(t, &buf)
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "http - v1 - convertVoice", line["message"])
}

func TestLogger_ErrorWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", Output(&buf))

	l.Error(errors.New("boom"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "boom", line["error"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", Output(&buf))

	l.Debug("hidden")
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New("verbose", Output(&buf))

	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestLogger_UnknownMessageType(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", Output(&buf))

	l.Debug(42)

	line := decodeLine(t, &buf)
	assert.Equal(t, "message 42 has unknown type int", line["message"])
}
