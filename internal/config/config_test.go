package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/rfcs/internal/model"
)

// setupConfigEnv points the config directory at a fresh temp dir and
// resets viper's global state, which Init and Set mutate.
func setupConfigEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Git.Repo)
	assert.Empty(t, cfg.Git.URL)
	assert.True(t, cfg.Scan.Recursive, "recursive scanning should be on by default")
}

func TestInit_MissingFileIsNotAnError(t *testing.T) {
	setupConfigEnv(t)

	require.NoError(t, Init())

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Scan.Recursive)
}

func TestSetAndLoad_RoundTrip(t *testing.T) {
	dir := setupConfigEnv(t)

	require.NoError(t, Init())
	require.NoError(t, Set("git.url", "git@example.com:team/rfcs.git"))
	require.NoError(t, Set("scan.recursive", "false"))

	assert.FileExists(t, filepath.Join(dir, "rfcs", "config.toml"))

	// A fresh viper instance must see the persisted values.
	viper.Reset()
	require.NoError(t, Init())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "git@example.com:team/rfcs.git", cfg.Git.URL)
	assert.False(t, cfg.Scan.Recursive)
}

func TestSet_PathStoredAbsolute(t *testing.T) {
	setupConfigEnv(t)
	require.NoError(t, Init())

	require.NoError(t, Set("git.repo", "some/relative/checkout"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Git.Repo),
		"git.repo should be persisted as an absolute path, got %q", cfg.Git.Repo)
}

func TestSet_UnknownKey(t *testing.T) {
	setupConfigEnv(t)
	require.NoError(t, Init())

	err := Set("git.branch", "main")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
	assert.Contains(t, err.Error(), "git.repo")
	assert.Contains(t, err.Error(), "git.url")
	assert.Contains(t, err.Error(), "scan.recursive")
}

func TestSet_InvalidBool(t *testing.T) {
	setupConfigEnv(t)
	require.NoError(t, Init())

	err := Set("scan.recursive", "maybe")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestSet_PreservesOtherKeys(t *testing.T) {
	setupConfigEnv(t)
	require.NoError(t, Init())
	require.NoError(t, Set("git.url", "https://example.com/rfcs.git"))

	// Re-init as a second invocation would, then change a different key.
	viper.Reset()
	require.NoError(t, Init())
	require.NoError(t, Set("scan.recursive", "false"))

	viper.Reset()
	require.NoError(t, Init())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rfcs.git", cfg.Git.URL)
	assert.False(t, cfg.Scan.Recursive)
}

func TestInit_MalformedFile(t *testing.T) {
	dir := setupConfigEnv(t)

	confDir := filepath.Join(dir, "rfcs")
	require.NoError(t, os.MkdirAll(confDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "config.toml"),
		[]byte("[git\nrepo = broken"), 0644))

	err := Init()
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

func TestKnownKeys(t *testing.T) {
	assert.Equal(t, []string{"git.repo", "git.url", "scan.recursive"}, KnownKeys())
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "rfcs"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "rfcs", "config.toml"), ConfigFile())
}
