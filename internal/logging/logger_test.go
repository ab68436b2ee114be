package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/soltixdb/linreg/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.DebugLevel)

	logger.Info("fit computed", "slope", 2.0, "points", 4)
	logger.Error("fit failed", "error", errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "fit computed", entries[0]["message"])
	assert.Equal(t, 2.0, entries[0]["slope"])
	assert.Equal(t, 4.0, entries[0]["points"])

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, zerolog.InfoLevel)
	child := base.With("strategy", "ols")

	child.Info("child", "odd")
	base.Info("base")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "ols", entries[0]["strategy"])
	assert.NotContains(t, entries[0], "odd")
	assert.NotContains(t, entries[1], "strategy")
}

func TestContext_RunID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), NewWithWriter(&buf, zerolog.InfoLevel))
	ctx = WithRunID(ctx, "")

	runID := RunID(ctx)
	_, err := uuid.Parse(runID)
	require.NoError(t, err)

	FromContext(ctx).Info("tagged")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, runID, entries[0]["run_id"])
}

func TestContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	previous := Global()
	SetGlobal(NewWithWriter(&buf, zerolog.InfoLevel))
	t.Cleanup(func() { SetGlobal(previous) })

	FromContext(WithRunID(context.Background(), "run-1")).Info("global")
	Info("package level")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "run-1", entries[0]["run_id"])
	assert.Equal(t, "package level", entries[1]["message"])
}

func TestNewFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "linreg.log")

	logger, err := NewFromConfig(config.LoggingConfig{
		Level:      "warn",
		Format:     "json",
		OutputPath: path,
	})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "x", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"message":"kept"`)
}

func TestNewFromConfig_InvalidLevelDefaultsToInfo(t *testing.T) {
	logger, err := NewFromConfig(config.LoggingConfig{Level: "loud", Format: "console", OutputPath: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.zl.GetLevel())
}
