package main

import (
	"os"

	"go.uber.org/zap"

	"view-cache-policy/internal/config"
)

// GetKeyDBURL resolves the KeyDB connection URL: the environment variable
// wins over the config file, with a local default for development.
func GetKeyDBURL(cfg *config.Config, logger *zap.Logger) string {
	if url := os.Getenv("KEYDB_URL"); url != "" {
		return url
	}

	if cfg.KeyDB.URL != "" {
		return cfg.KeyDB.URL
	}

	logger.Warn("KEYDB_URL not set, using local default")
	return "redis://localhost:6379"
}
