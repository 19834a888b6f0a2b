package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.Store.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Catalog.Path, "default inventory is the built-in seed")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Logging.Level, cfg.Logging.Level)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  path: /tmp/custom.db
catalog:
  path: /tmp/stock.json
  watch: true
logging:
  level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.Store.Path)
	assert.Equal(t, "/tmp/stock.json", cfg.Catalog.Path)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: ["), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: /tmp/from-file.db\n"), 0644))

	t.Setenv("SOLE_STORE_PATH", "/tmp/from-env.db")
	t.Setenv("SOLE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
