package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/huddle/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestInitWritesToDataDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()

	closer, err := Init(*cfg)
	require.NoError(t, err)

	Logger.Info("dashboard started", "projects", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(cfg.Storage.DataDir, "logs", "huddle.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "dashboard started")
	assert.Contains(t, string(data), "projects=4")
}
