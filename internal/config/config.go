package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// BigCacheConfig configures the in-process L1 store
type BigCacheConfig struct {
	Enabled         bool `yaml:"enabled"`
	Size            int  `yaml:"size"`             // hard cap in MB
	EvictionMinutes int  `yaml:"eviction_minutes"` // bigcache window eviction
}

// KeyDBConfig configures the KeyDB/Redis L2 store
type KeyDBConfig struct {
	Enabled          bool   `yaml:"enabled"`
	URL              string `yaml:"url"`
	ReadTimeoutMs    int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs   int    `yaml:"write_timeout_ms"`
	ConnectTimeoutMs int    `yaml:"connect_timeout_ms"`
}

// Config represents the main configuration structure
type Config struct {
	BigCache BigCacheConfig `yaml:"bigcache"`
	KeyDB    KeyDBConfig    `yaml:"keydb"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.BigCache.Size == 0 {
		c.BigCache.Size = 64
	}
	if c.BigCache.EvictionMinutes == 0 {
		c.BigCache.EvictionMinutes = 10
	}
	if c.KeyDB.ReadTimeoutMs == 0 {
		c.KeyDB.ReadTimeoutMs = 500
	}
	if c.KeyDB.WriteTimeoutMs == 0 {
		c.KeyDB.WriteTimeoutMs = 500
	}
	if c.KeyDB.ConnectTimeoutMs == 0 {
		c.KeyDB.ConnectTimeoutMs = 2000
	}
}

// GetReadTimeout returns the KeyDB read timeout as a duration
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.KeyDB.ReadTimeoutMs) * time.Millisecond
}

// GetWriteTimeout returns the KeyDB write timeout as a duration
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.KeyDB.WriteTimeoutMs) * time.Millisecond
}

// GetConnectTimeout returns the KeyDB connect timeout as a duration
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.KeyDB.ConnectTimeoutMs) * time.Millisecond
}
