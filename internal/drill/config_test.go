package drill

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultCacheCapacity, cfg.Server.CacheCapacity)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pokertrainer.hcl")
	content := `
server {
  address        = "0.0.0.0"
  port           = 9090
  log_level      = "debug"
  cache_capacity = 50
  cache_ttl      = "10m"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddress())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 50, cfg.Server.CacheCapacity)

	ttl, err := cfg.CacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, ttl)
}

func TestLoadConfigPartialFileGetsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "partial.hcl")
	content := `
server {
  port = 9999
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, DefaultCacheCapacity, cfg.Server.CacheCapacity)
}

func TestLoadConfigBadHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"zero capacity", func(c *Config) { c.Server.CacheCapacity = -1 }, false},
		{"bad ttl", func(c *Config) { c.Server.CacheTTL = "soon" }, false},
		{"negative ttl", func(c *Config) { c.Server.CacheTTL = "-5m" }, false},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "verbose" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}
