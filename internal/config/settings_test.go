package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spacerocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFile(t *testing.T) {
	path := writeSettings(t, `
log_level: debug
assets_dir: ./assets
seed: 42
ssh:
  port: "2323"
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "./assets", s.AssetsDir)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "2323", s.SSH.Port)
	assert.Equal(t, "::", s.SSH.Host, "unset keys keep their defaults")
}

func TestLoadEmptyFile(t *testing.T) {
	s, err := Load(writeSettings(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeSettings(t, "difficulty: hard\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SSH_PORT", "2000")
	t.Setenv("SPACEROCKS_SEED", "9")
	t.Setenv("SPACEROCKS_LOG_FILE", "/tmp/rocks.log")

	s, err := Load(writeSettings(t, "ssh:\n  port: \"2323\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "2000", s.SSH.Port)
	assert.Equal(t, int64(9), s.Seed)
	assert.Equal(t, "/tmp/rocks.log", s.LogFile)
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("SPACEROCKS_SEED", "many")
	_, err := Load("")
	require.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SPACEROCKS_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("SPACEROCKS_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SPACEROCKS_TEST_MISSING", "fallback"))
}

func TestNewRandSeeded(t *testing.T) {
	s := Default()
	s.Seed = 42
	assert.Equal(t, s.NewRand().Int63(), s.NewRand().Int63(), "a fixed seed replays the same game")
}
