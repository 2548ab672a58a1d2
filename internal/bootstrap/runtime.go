// Package bootstrap connects the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"brainly/internal/cache"
	"brainly/internal/config"
	"brainly/internal/database"
	"brainly/internal/middleware"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and, when REDIS_URL is set, to
// Redis. An unreachable Redis is logged and yields a nil client so the
// service runs without caching.
func InitRuntime(ctx context.Context, cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if cfg.RedisURL == "" {
		middleware.Logger.Info("REDIS_URL not set, caching disabled")
		return db, nil, nil
	}

	r, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		middleware.Logger.Warn("redis unavailable, caching disabled", "error", err)
		return db, nil, nil
	}
	return db, r, nil
}
