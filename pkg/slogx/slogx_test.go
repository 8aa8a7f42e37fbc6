package slogx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output carries service fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{
			Service: "studia",
			Version: "1.2.3",
			Env:     "prod",
			Level:   "info",
			Format:  "json",
			Output:  &buf,
		})

		logger.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		require.Equal(t, "studia", record["service"])
		require.Equal(t, "1.2.3", record["version"])
		require.Equal(t, "hello", record["msg"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "warn", Format: "text", Output: &buf})

		logger.Info("dropped")
		require.Zero(t, buf.Len())

		logger.Warn("kept")
		require.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}
