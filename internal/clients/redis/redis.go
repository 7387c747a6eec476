package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/utils"
)

// NewClient connects to redis using REDIS_ADDR. Returns (nil, nil) when no
// address is configured: redis only backs rate limiting here, and the
// limiter fails open without it.
func NewClient(log *logger.Logger) (*goredis.Client, error) {
	clientLog := log.With("client", "Redis")

	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		clientLog.Warn("REDIS_ADDR not set, AI rate limiting disabled")
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    utils.GetEnv("REDIS_PASSWORD", "", log),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	clientLog.Info("Connected to redis", "addr", addr)
	return rdb, nil
}
