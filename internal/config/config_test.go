package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TEAMDASH_ADDR", ":9000")
	t.Setenv("TEAMDASH_DATA_DIR", "/var/lib/teamdash")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/var/lib/teamdash", cfg.DataDir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "teamdash.toml")
	require.NoError(t, os.WriteFile(path, []byte("addr = \":8080\"\ndata_dir = \"/tmp/dash\"\n"), 0o644))

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/tmp/dash", cfg.DataDir)
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "teamdash.toml"), []byte("addr = \":8080\"\n"), 0o644))
	t.Setenv("TEAMDASH_ADDR", ":9000")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
}
