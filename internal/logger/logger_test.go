package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "error"},
		{level: "not-a-level", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Log = originalLog
			err := Initialize(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Same(t, originalLog, Log)
				return
			}
			require.NoError(t, err)
			assert.NotSame(t, originalLog, Log)
		})
	}
}

func TestBuild_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	l, err := build("info", zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Infow("job application created", "id", 42)
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "job application created", entry["msg"])
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, float64(42), entry["id"])
	assert.Contains(t, entry, "ts")
}

func TestBuild_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := build("warn", zapcore.AddSync(&buf))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"shown"`)
}

func TestSync_NopLogger(t *testing.T) {
	assert.NotPanics(t, Sync)
}
