package core

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestSlogLogger_WritesJSONAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(&buf, slog.LevelInfo, slog.String("app", "frogread"))

	log.Debugf("hidden %d", 1)
	log.Infof("q pressed")
	log.Errorf("draw: %s", "broken")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "q pressed", rec["msg"])
	assert.Equal(t, "frogread", rec["app"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "draw: broken", rec["msg"])
}

func TestFmtLogger(t *testing.T) {
	var buf bytes.Buffer
	log := FmtLogger(&buf)

	log.Warnf("received %s", "hangup")

	assert.Equal(t, "WARN  received hangup\n", buf.String())
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		l := NopLogger()
		l.Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
