package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a scratch directory so the developer's real
// config and .env never leak into the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("HUDDLE_CONFIG", "")
	t.Setenv("HUDDLE_DATA_DIR", "")
	t.Setenv("HUDDLE_STORAGE_DRIVER", "")
	t.Setenv("HUDDLE_LOG_LEVEL", "")
	t.Setenv("HUDDLE_S3_BUCKET", "")
	t.Chdir(dir)
	return dir
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.IncreaseProgress != "+" {
		t.Errorf("Default IncreaseProgress key = %s, want +", defaults.IncreaseProgress)
	}
	if defaults.Delete != "d" {
		t.Errorf("Default Delete key = %s, want d", defaults.Delete)
	}
	if defaults.New != "n" || defaults.Edit != "e" || defaults.AssignMembers != "a" {
		t.Errorf("Default form keys = %s/%s/%s, want n/e/a", defaults.New, defaults.Edit, defaults.AssignMembers)
	}
	if defaults.SaveForm != "ctrl+s" {
		t.Errorf("Default SaveForm key = %s, want ctrl+s", defaults.SaveForm)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(dir, ".huddle"), cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.NotEmpty(t, cfg.ColorScheme.Chart)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)

	configDir := filepath.Join(dir, "huddle")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `storage:
  driver: fs
  data_dir: /tmp/huddle-data
log:
  level: debug
key_mappings:
  quit: "x"
theme:
  preset: monochrome
  accent: "#123456"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverFS, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/huddle-data", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	// Missing keys fall back to defaults
	assert.Equal(t, "d", cfg.KeyMappings.Delete)
	// Explicit color wins, the rest comes from the preset
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#585858", cfg.ColorScheme.Subtle)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HUDDLE_STORAGE_DRIVER", "memory")
	t.Setenv("HUDDLE_DATA_DIR", "/srv/huddle")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/srv/huddle", cfg.Storage.DataDir)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HUDDLE_LOG_LEVEL=warn\n"), 0o644))
	// godotenv never overrides variables that are already set, including empty ones
	require.NoError(t, os.Unsetenv("HUDDLE_LOG_LEVEL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInvalidYAMLFails(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, "huddle")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("storage: [oops"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Storage.Driver = DriverFS
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverFS, loaded.Storage.Driver)
}
