package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Theme)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Animation.PressDuration)
	assert.Equal(t, "nahw.db", filepath.Base(cfg.DatabasePath()))
	assert.Equal(t, "nahw.log", filepath.Base(cfg.LogPath()))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `theme: high-contrast
dark_mode: true
data_dir: ` + dir + `
log:
  level: debug
animation:
  duration: 450ms
fonts:
  dirs:
    - /opt/fonts
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "high-contrast", cfg.Theme)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 450*time.Millisecond, cfg.Animation.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Animation.PressDuration)
	assert.Equal(t, []string{"/opt/fonts"}, cfg.Fonts.Dirs)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NAHW_THEME", "high-contrast")
	t.Setenv("NAHW_DARK_MODE", "true")
	t.Setenv("NAHW_DATA_DIR", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "high-contrast", cfg.Theme)
	assert.True(t, cfg.DarkMode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		DataDir:   "/tmp/nahw",
		Animation: AnimationConfig{Duration: time.Second, PressDuration: time.Second},
	}
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Animation.Duration = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.DataDir = " "
	require.Error(t, bad.Validate())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
