package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("lang", "ko"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "lang=ko")
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wikiscroll.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closer.Close())

	logger, closer, err = Open(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := WithFields(New(&buf, slog.LevelInfo), map[string]any{"batch_id": "abc"})
	logger.Info("merged")
	assert.Contains(t, buf.String(), "batch_id=abc")
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing happens")
}
