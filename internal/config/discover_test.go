package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	// Clear XDG var to test default
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, ".config/marquee/config.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path := DefaultPath()
	assert.Equal(t, "/custom/config/marquee/config.toml", path)
}

func TestDiscover_MARQUEE_CONFIG(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	err := os.WriteFile(cfgPath, []byte("[server]"), 0644)
	require.NoError(t, err, "failed to create test config")

	t.Setenv("MARQUEE_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_MARQUEE_CONFIG_NotFound(t *testing.T) {
	t.Setenv("MARQUEE_CONFIG", "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err, "expected error for missing MARQUEE_CONFIG")
	assert.Contains(t, err.Error(), "MARQUEE_CONFIG")
}

func TestDiscover_CurrentDir(t *testing.T) {
	// Save current dir
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv("MARQUEE_CONFIG", "")

	// Create temp dir with config
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	err = os.WriteFile(cfgPath, []byte("[server]"), 0644)
	require.NoError(t, err, "failed to create test config")
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	path, err := Discover()
	require.NoError(t, err)
	assert.True(t, filepath.Base(path) == "config.toml", "expected config.toml, got %s", path)
}

func TestDiscover_NotFound(t *testing.T) {
	// Save current dir
	origDir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")
	defer func() {
		err := os.Chdir(origDir)
		assert.NoError(t, err, "failed to restore working directory")
	}()

	t.Setenv("MARQUEE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")

	tmp := t.TempDir() // Empty temp dir
	err = os.Chdir(tmp)
	require.NoError(t, err, "failed to change directory")

	_, err = Discover()
	require.Error(t, err, "expected error when no config found")
	assert.Contains(t, err.Error(), "config not found")
}

// chdirEmpty moves into an empty directory with no discoverable config.
func chdirEmpty(t *testing.T) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	t.Setenv("MARQUEE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
}

func TestResolve_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tmdb]\napi_key = \"k\"\n"), 0644))

	cfg, source, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, "k", cfg.TMDB.APIKey)
}

func TestResolve_Discovered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "found.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tmdb]\nread_token = \"t\"\n"), 0644))
	t.Setenv("MARQUEE_CONFIG", path)

	cfg, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, "t", cfg.TMDB.ReadToken)
}

func TestResolve_EnvFallback(t *testing.T) {
	chdirEmpty(t)
	t.Setenv("MARQUEE_TMDB_API_KEY", "env-key")

	cfg, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, EnvSource, source)
	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
}

func TestResolve_NothingUsable(t *testing.T) {
	chdirEmpty(t)
	t.Setenv("MARQUEE_TMDB_API_KEY", "")
	t.Setenv("MARQUEE_TMDB_READ_TOKEN", "")

	_, _, err := Resolve("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config not found")

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestResolve_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 99999\n"), 0644))

	_, _, err := Resolve(path)
	require.Error(t, err)
}
