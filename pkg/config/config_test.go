package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getitemd/itemd/pkg/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, store.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "itemd.db", cfg.Store.DSN)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "itemd.yaml", `
port: 9090
log:
  level: debug
  format: json
store:
  backend: postgres
  dsn: "host=localhost user=itemd dbname=itemd"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, store.BackendPostgres, cfg.Store.Backend)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "itemd.json", `{"port": 7070, "store": {"backend": "memory"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, store.BackendMemory, cfg.Store.Backend)
	// Untouched fields keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = Load(writeFile(t, "empty.yaml", "   \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Load(writeFile(t, "broken.yaml", "port: [unclosed"))
	assert.ErrorIs(t, err, ErrInvalidYAML)

	_, err = Load(writeFile(t, "broken.json", "{not json"))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "itemd.yaml", "port: 9090\n")
	t.Setenv(EnvPort, "6060")
	t.Setenv(EnvDBBackend, "memory")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
	assert.Equal(t, store.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnvIgnoresUnset(t *testing.T) {
	cfg := Default()
	ApplyEnv(&cfg)
	assert.Equal(t, Default(), cfg)

	t.Setenv(EnvPort, "not-a-number")
	ApplyEnv(&cfg)
	assert.Equal(t, 8080, cfg.Port)
}
