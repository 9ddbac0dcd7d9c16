package l2

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"view-cache-policy/internal/config"
	"view-cache-policy/internal/interfaces"
)

// Ensure redis.Client satisfies the KeyDbClient interface
var _ interfaces.KeyDbClient = (*redis.Client)(nil)

// NewRedisKeyDbClient creates a Redis client for KeyDB and verifies
// connectivity before returning it.
func NewRedisKeyDbClient(cfg *config.Config, url string, logger *zap.Logger) (interfaces.KeyDbClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse KeyDB URL: %w", err)
	}

	opts.ReadTimeout = cfg.GetReadTimeout()
	opts.WriteTimeout = cfg.GetWriteTimeout()
	opts.DialTimeout = cfg.GetConnectTimeout()

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetConnectTimeout())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping KeyDB: %w", err)
	}

	logger.Info("Connected to KeyDB", zap.String("addr", opts.Addr))
	return client, nil
}
