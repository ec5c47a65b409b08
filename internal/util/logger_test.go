package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel, format LogFormat) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := &Logger{
		level:  level,
		fields: make(map[string]interface{}),
		mu:     new(sync.RWMutex),
	}
	logger.AddOutput(NewConsoleOutput(&buf, format))
	return logger, &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestLogger_LevelFilter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.Debug("hidden")
	logger.Infof("shown %d", 1)
	logger.Warn("warned")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] shown 1")
	assert.Contains(t, out, "[WARN] warned")

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "[DEBUG] now visible")
}

func TestLogger_TextFieldsAreSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	logger.With(Field{Key: "zone", Value: "UTC"}).Info("tick", Field{Key: "alpha", Value: 80})

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "tick alpha=80 zone=UTC"), line)
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.Error("frame failed", Field{Key: "height", Value: 300})

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "frame failed", entry.Message)
	assert.EqualValues(t, 300, entry.Fields["height"])
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger("info", "", false)
	assert.Error(t, err, "a logger needs somewhere to write")

	path := filepath.Join(t.TempDir(), "face.log")
	logger, err := NewLogger("info", path, false)
	require.NoError(t, err)

	logger.Info("started")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] started")
}

func TestGlobalLogger(t *testing.T) {
	require.NoError(t, CloseLogger())

	// Without a logger every call is a no-op
	LogInfof("dropped %s", "silently")

	logger, buf := newBufferLogger(LevelDebug, FormatText)
	SetLogger(logger)
	defer SetLogger(nil)

	LogDebugf("scheduler %s", "started")
	LogWarn("careful")
	LogErrorf("failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] scheduler started")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[ERROR] failed: boom")
	assert.NotContains(t, out, "dropped")
}
