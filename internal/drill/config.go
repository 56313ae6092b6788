package drill

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the drill server configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
}

// ServerSettings contains server-level configuration.
type ServerSettings struct {
	Address       string `hcl:"address,optional"`
	Port          int    `hcl:"port,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	CacheCapacity int    `hcl:"cache_capacity,optional"`
	CacheTTL      string `hcl:"cache_ttl,optional"`
}

// DefaultConfig returns the default drill server configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:       "localhost",
			Port:          8080,
			LogLevel:      "info",
			CacheCapacity: DefaultCacheCapacity,
			CacheTTL:      DefaultCacheTTL.String(),
		},
	}
}

// LoadConfig loads drill server configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.CacheCapacity == 0 {
		config.Server.CacheCapacity = DefaultCacheCapacity
	}
	if config.Server.CacheTTL == "" {
		config.Server.CacheTTL = DefaultCacheTTL.String()
	}

	return &config, nil
}

// Validate validates the drill server configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.CacheCapacity < 1 {
		return fmt.Errorf("cache capacity must be positive: %d", c.Server.CacheCapacity)
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}
	return nil
}

// CacheTTL parses the configured TTL duration.
func (c *Config) CacheTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(c.Server.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache TTL %q: %w", c.Server.CacheTTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("cache TTL must be positive: %s", c.Server.CacheTTL)
	}
	return ttl, nil
}

// GetServerAddress returns the full listen address.
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
