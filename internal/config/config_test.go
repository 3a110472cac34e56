package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillbook/tillbook/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "127.0.0.1:3000", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.OpenAPI.Enabled)
	assert.Equal(t, "badger", cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ConnMaxLifetime)
}

func TestNew_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: sqlite
  data_dir: /var/lib/tillbook
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/tillbook", cfg.Storage.DataDir)
	assert.Equal(t, "127.0.0.1:3000", cfg.HTTP.Address, "defaults survive")
}
