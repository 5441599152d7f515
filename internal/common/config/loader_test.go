// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  redis:
    address: "localhost:6379"
defaults:
  base_url: "http://localhost:8081"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "huntersite-datastore", cfg.App.Name)
	assert.Equal(t, "huntersite_", cfg.Storage.KeyPrefix)
	assert.Equal(t, 5*1024*1024, cfg.Storage.MaxValueBytes)
	assert.Equal(t, "assets/data/profile.json", cfg.Defaults.ProfilePath)
	assert.Equal(t, "assets/data/jobs.json", cfg.Defaults.JobsPath)
	assert.Equal(t, 10000, cfg.Defaults.Timeout)
	assert.Equal(t, ":9102", cfg.Metrics.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_ValidatesRequiredFields(t *testing.T) {
	path := writeConfigFile(t, `
defaults:
  base_url: "http://localhost:8081"
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.redis.address")
}

func TestLoadFromFile_ExplicitValuesKept(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  redis:
    address: "redis.internal:6380"
    db: 2
  key_prefix: "custom_"
  max_value_bytes: 1024
defaults:
  base_url: "https://cdn.example.com"
  timeout: 500
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Storage.Redis.Address)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "custom_", cfg.Storage.KeyPrefix)
	assert.Equal(t, 1024, cfg.Storage.MaxValueBytes)
	assert.Equal(t, 500, cfg.Defaults.Timeout)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}
